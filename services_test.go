package dceapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/openfutures/dceapi/internal/testhelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureBody registers a data endpoint that records the decoded request
// body and succeeds with the given payload.
func captureBody(t *testing.T, mock *testhelpers.MockExchange, path string, data any) *map[string]any {
	t.Helper()

	var body map[string]any
	mock.Handle(path, func(w http.ResponseWriter, r *http.Request) {
		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(raw, &body))
		testhelpers.WriteEnvelope(w, 200, "success", data)
	})
	return &body
}

func TestNews_ArticleByPage_RejectsUnknownColumn(t *testing.T) {
	client, err := New(Config{APIKey: "k", Secret: "s"})
	require.NoError(t, err)

	_, err = client.News.ArticleByPage(context.Background(), &ArticleByPageRequest{ColumnID: "999"}, nil)

	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "ColumnID", valErr.Field)
}

func TestNews_ArticleByPage_AppliesDefaultSite(t *testing.T) {
	mock := testhelpers.SetupMockExchange(t)
	body := captureBody(t, mock, pathArticleByPage, map[string]any{
		"columnId":   ColumnNews,
		"totalCount": 1,
		"resultList": []map[string]string{{"id": "42", "title": "headline"}},
	})

	client := testClient(t, mock)

	req := &ArticleByPageRequest{ColumnID: ColumnNews, PageNo: 1, PageSize: 20}
	page, err := client.News.ArticleByPage(context.Background(), req, nil)
	require.NoError(t, err)

	assert.Equal(t, float64(defaultSiteID), (*body)["siteId"])
	assert.Zero(t, req.SiteID, "the caller's request must not be mutated")
	require.Len(t, page.ResultList, 1)
	assert.Equal(t, "headline", page.ResultList[0].Title)
}

func TestNews_ArticleDetail_RequiresID(t *testing.T) {
	client, err := New(Config{APIKey: "k", Secret: "s"})
	require.NoError(t, err)

	_, err = client.News.ArticleDetail(context.Background(), "", nil)

	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
}

func TestMarket_Quotes_DecodesWireNames(t *testing.T) {
	mock := testhelpers.SetupMockExchange(t)
	mock.HandleData(pathDayQuotes, []map[string]any{{
		"variety":      "a",
		"contractId":   "a2609",
		"open":         "4100",
		"close":        "4120",
		"volumn":       15000,
		"openInterest": 120000,
	}})

	client := testClient(t, mock)

	quotes, err := client.Market.DayQuotes(context.Background(), &QuotesRequest{
		VarietyID: "a",
		TradeDate: "20260828",
	}, nil)
	require.NoError(t, err)

	require.Len(t, quotes, 1)
	assert.Equal(t, int64(15000), quotes[0].Volume)
	assert.Equal(t, "4120", quotes[0].Close)
}

func TestMarket_Quotes_RequireTradeDate(t *testing.T) {
	client, err := New(Config{APIKey: "k", Secret: "s"})
	require.NoError(t, err)

	for name, call := range map[string]func(context.Context, *QuotesRequest, *RequestOptions) ([]Quote, error){
		"day":   client.Market.DayQuotes,
		"night": client.Market.NightQuotes,
		"week":  client.Market.WeekQuotes,
		"month": client.Market.MonthQuotes,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := call(context.Background(), &QuotesRequest{VarietyID: "a"}, nil)

			var valErr *ValidationError
			require.ErrorAs(t, err, &valErr)
			assert.Equal(t, "TradeDate", valErr.Field)
		})
	}
}

func TestMarket_ContractMonthMax_SelectsStatistic(t *testing.T) {
	mock := testhelpers.SetupMockExchange(t)
	body := captureBody(t, mock, pathContractMonthMax, []map[string]any{
		{"variety": "a", "contractId": "a2609", "tradeMonth": "202608", "maxQty": 90000},
	})

	client := testClient(t, mock)

	rows, err := client.Market.ContractMonthMaxVolume(context.Background(), &ContractMonthMaxRequest{
		VarietyID:  "a",
		StartMonth: "202601",
		EndMonth:   "202608",
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, statContentVolume, (*body)["statContent"])
	require.Len(t, rows, 1)
	assert.Equal(t, int64(90000), rows[0].MaxQty)
}

func TestMarket_ContractMonthMaxPrice_SelectsStatistic(t *testing.T) {
	mock := testhelpers.SetupMockExchange(t)
	body := captureBody(t, mock, pathContractMonthMax, []map[string]any{})

	client := testClient(t, mock)

	_, err := client.Market.ContractMonthMaxPrice(context.Background(), &ContractMonthMaxRequest{
		VarietyID:  "a",
		StartMonth: "202601",
		EndMonth:   "202608",
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, statContentPrice, (*body)["statContent"])
}

func TestTrade_MonthTradeParam_ReturnsRawSections(t *testing.T) {
	mock := testhelpers.SetupMockExchange(t)
	mock.HandleData(pathMonthTradeParam, map[string]any{
		"futures": []map[string]string{{"varietyId": "a"}},
		"options": []map[string]string{{"varietyId": "a2609-C-4000"}},
	})

	client := testClient(t, mock)

	sections, err := client.Trade.MonthTradeParam(context.Background(), nil)
	require.NoError(t, err)

	assert.Contains(t, sections, "futures")
	assert.Contains(t, sections, "options")
}

func TestTrade_ValidationErrors(t *testing.T) {
	client, err := New(Config{APIKey: "k", Secret: "s"})
	require.NoError(t, err)
	ctx := context.Background()

	var valErr *ValidationError

	_, err = client.Trade.DayTradeParam(ctx, &DayTradeParamRequest{}, nil)
	require.ErrorAs(t, err, &valErr)

	_, err = client.Trade.ContractInfo(ctx, nil, nil)
	require.ErrorAs(t, err, &valErr)

	_, err = client.Trade.MarginArbiPerfPara(ctx, nil, nil)
	require.ErrorAs(t, err, &valErr)
}

func TestTrade_ArbitrageContract_DefaultsLanguage(t *testing.T) {
	mock := testhelpers.SetupMockExchange(t)
	body := captureBody(t, mock, pathArbitrageContract, []map[string]string{})

	client := testClient(t, mock)

	_, err := client.Trade.ArbitrageContract(context.Background(), "", nil)
	require.NoError(t, err)

	assert.Equal(t, client.Config().Lang, (*body)["lang"])
}

func TestSettle_SettleParam(t *testing.T) {
	mock := testhelpers.SetupMockExchange(t)
	mock.HandleData(pathSettleParam, []map[string]any{{
		"variety":    "a",
		"contractId": "a2609",
	}})

	client := testClient(t, mock)

	rows, err := client.Settle.SettleParam(context.Background(), &SettleParamRequest{
		VarietyID: "a",
		TradeDate: "20260828",
	}, nil)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "a2609", rows[0].ContractID)

	_, err = client.Settle.SettleParam(context.Background(), nil, nil)
	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
}

func TestMember_DailyRanking(t *testing.T) {
	mock := testhelpers.SetupMockExchange(t)
	mock.HandleData(pathDailyRanking, map[string]any{
		"qtyFutureList": []map[string]any{
			{"memberId": "0001", "memberName": "member one", "qty": 1200, "rank": "1"},
		},
	})

	client := testClient(t, mock)

	rankings, err := client.Member.DailyRanking(context.Background(), &DailyRankingRequest{
		ContractID: "a2609",
		TradeDate:  "20260828",
	}, nil)
	require.NoError(t, err)
	require.Len(t, rankings.QtyFutureList, 1)
	assert.Equal(t, "1", rankings.QtyFutureList[0].Rank)

	_, err = client.Member.DailyRanking(context.Background(), &DailyRankingRequest{}, nil)
	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "ContractID", valErr.Field)
}

func TestDelivery_DeliveryCost_BuildsBody(t *testing.T) {
	mock := testhelpers.SetupMockExchange(t)
	body := captureBody(t, mock, pathDeliveryCost, []map[string]string{})

	client := testClient(t, mock)

	_, err := client.Delivery.DeliveryCost(context.Background(), "all", VarietyTypePhysical, nil)
	require.NoError(t, err)

	assert.Equal(t, "all", (*body)["varietyId"])
	assert.Equal(t, VarietyTypePhysical, (*body)["varietyType"])
}

func TestDelivery_ValidationErrors(t *testing.T) {
	client, err := New(Config{APIKey: "k", Secret: "s"})
	require.NoError(t, err)
	ctx := context.Background()

	var valErr *ValidationError

	_, err = client.Delivery.DeliveryData(ctx, &DeliveryDataRequest{}, nil)
	require.ErrorAs(t, err, &valErr)

	_, err = client.Delivery.DeliveryCost(ctx, "", VarietyTypePhysical, nil)
	require.ErrorAs(t, err, &valErr)

	_, err = client.Delivery.WarehousePremiumReport(ctx, "", "20260828", nil)
	require.ErrorAs(t, err, &valErr)

	_, err = client.Delivery.BondedDelivery(ctx, nil, nil)
	require.ErrorAs(t, err, &valErr)
}

func TestCommon_VarietyMonthYearStat_RequiresMonth(t *testing.T) {
	client, err := New(Config{APIKey: "k", Secret: "s"})
	require.NoError(t, err)

	_, err = client.Common.VarietyMonthYearStat(context.Background(), &VarietyMonthYearStatRequest{}, nil)

	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "TradeMonth", valErr.Field)
}
