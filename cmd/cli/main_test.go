package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rishad190/bhaiyaPos-sub001/internal/adapter/http/dto"
	"github.com/rishad190/bhaiyaPos-sub001/internal/domain"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "lon...", truncate("longerstring", 6))
	assert.Equal(t, "lo", truncate("longerstring", 2))
}

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printJSON(&buf, struct {
		A int `json:"a"`
	}{A: 1}))

	assert.Equal(t, "{\n  \"a\": 1\n}\n", buf.String())
}

func TestCashbookReportCmd(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/cashbook/report", r.URL.Path)
		gotQuery = r.URL.RawQuery

		report := domain.AggregateLedger([]domain.LedgerEntry{
			{ID: "e1", Date: "2024-03-01", CashIn: decimal.NewFromInt(500), Description: "fabric sale"},
			{ID: "e2", Date: "2024-03-01", CashOut: decimal.NewFromInt(120), Description: "transport"},
		}, domain.ReportFilter{})
		json.NewEncoder(w).Encode(dto.LedgerReportFromDomain(report))
	}))
	defer srv.Close()

	out, err := execute(t, "--url", srv.URL, "cashbook", "report", "--search", "sale")
	require.NoError(t, err)

	assert.Equal(t, "search=sale", gotQuery)
	assert.Contains(t, out, "Available cash:  380.00")
	assert.Contains(t, out, "2024-03-01")
	assert.Contains(t, out, "fabric sale")
}

func TestInventorySellCmd(t *testing.T) {
	var got dto.SellRequest
	var idempotencyKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/fabrics/f1/sales", r.URL.Path)
		idempotencyKey = r.Header.Get("Idempotency-Key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(dto.SaleResponse{ID: "s1", FabricID: "f1", Quantity: decimal.NewFromInt(3)})
	}))
	defer srv.Close()

	out, err := execute(t, "--url", srv.URL, "inventory", "sell", "f1", "--qty", "3", "--price", "250", "--color", "red")
	require.NoError(t, err)

	assert.Equal(t, "3", got.Quantity)
	assert.Equal(t, "250", got.UnitPrice)
	assert.Equal(t, "red", got.Color)
	assert.NotEmpty(t, idempotencyKey)
	assert.Contains(t, out, `"id": "s1"`)
}

func TestInventorySellCmd_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(dto.ErrorResponse{Error: "failed to sell fabric", Message: "insufficient stock"})
	}))
	defer srv.Close()

	_, err := execute(t, "--url", srv.URL, "inventory", "sell", "f1", "--qty", "99", "--price", "250")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 409")
	assert.Contains(t, err.Error(), "insufficient stock")
}

func TestFIFOPreviewCmd(t *testing.T) {
	file := filepath.Join(t.TempDir(), "batches.json")
	require.NoError(t, os.WriteFile(file, []byte(`[
		{"id":"new","purchase_date":"2024-02-01","unit_cost":"12","quantity":"10"},
		{"id":"old","purchase_date":"2024-01-01","unit_cost":"10","quantity":"5"}
	]`), 0o600))

	out, err := execute(t, "fifo", "preview", "--file", file, "--qty", "7")
	require.NoError(t, err)

	var resp dto.SalePreviewResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))

	require.Len(t, resp.ConsumedLots, 2)
	assert.Equal(t, "old", resp.ConsumedLots[0].BatchID)
	assert.Equal(t, "new", resp.ConsumedLots[1].BatchID)
	assert.True(t, resp.TotalCost.Equal(decimal.NewFromInt(74)), "got %s", resp.TotalCost)
	assert.Nil(t, resp.Remaining)
}

func TestFIFOPreviewCmd_InsufficientStock(t *testing.T) {
	file := filepath.Join(t.TempDir(), "batches.json")
	require.NoError(t, os.WriteFile(file, []byte(`[{"purchase_date":"2024-01-01","unit_cost":"10","quantity":"5"}]`), 0o600))

	_, err := execute(t, "fifo", "preview", "--file", file, "--qty", "6")
	assert.True(t, errors.Is(err, domain.ErrInsufficientStock), "got %v", err)
}

func TestReconcileCmd(t *testing.T) {
	consistent := true
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := dto.ReconciliationReportResponse{TotalFabrics: 2, ReconciledFabrics: 2, Consistent: consistent}
		if !consistent {
			resp.ReconciledFabrics = 1
			resp.Discrepancies = []dto.DiscrepancyResponse{
				{Kind: "batch", ID: "b7", Expected: decimal.Zero, Actual: decimal.NewFromInt(-2), Reason: "negative quantity"},
			}
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	out, err := execute(t, "--url", srv.URL, "reconcile")
	require.NoError(t, err)
	assert.Contains(t, out, "Reconciliation PASSED")

	consistent = false
	out, err = execute(t, "--url", srv.URL, "reconcile")
	assert.ErrorIs(t, err, errInconsistent)
	assert.True(t, strings.Contains(out, "b7") && strings.Contains(out, "negative quantity"), out)
}
