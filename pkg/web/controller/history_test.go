package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/moyu-x/batch-rename/pkg/web/model"
)

func TestHistoryEndpoints(t *testing.T) {
	setupTestConfig(t, true)
	dir := t.TempDir()
	paths := createTestFiles(t, dir, "doc.txt")

	// 先执行一个批次产生历史
	body := fmt.Sprintf(
		`{"paths":[%q],"command":{"mode":"Case","config":{"mode":"upper"}}}`,
		paths[0],
	)
	ctx, w := newTestContext("POST", "/api/v1/rename", []byte(body))
	NewRenameController(ctx).Rename()
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d, body: %s", w.Code, w.Body.String())
	}

	var resp model.RenameResponse
	if err := json.Unmarshal(decodeEnvelope(t, w).Data, &resp); err != nil {
		t.Fatalf("解析结果失败: %v", err)
	}
	if resp.BatchID == "" {
		t.Fatal("expected batch ID in response")
	}

	// 批次列表
	ctx, w = newTestContext("GET", "/api/v1/history?limit=5", nil)
	NewHistoryController(ctx).ListBatches()
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d, body: %s", w.Code, w.Body.String())
	}

	var batches []model.HistoryBatch
	if err := json.Unmarshal(decodeEnvelope(t, w).Data, &batches); err != nil {
		t.Fatalf("解析批次列表失败: %v", err)
	}
	if len(batches) != 1 {
		t.Fatalf("expected 1 batch, got %d", len(batches))
	}
	if batches[0].BatchID != resp.BatchID || batches[0].Mode != "Case" {
		t.Errorf("unexpected batch summary: %+v", batches[0])
	}
	if batches[0].Total != 1 || batches[0].Succeeded != 1 {
		t.Errorf("unexpected batch counts: %+v", batches[0])
	}

	// 批次明细
	ctx, w = newTestContext("GET", "/api/v1/history/"+resp.BatchID, nil)
	ctx.Params = gin.Params{{Key: "id", Value: resp.BatchID}}
	NewHistoryController(ctx).GetBatch()
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d, body: %s", w.Code, w.Body.String())
	}

	var records []model.HistoryRecord
	if err := json.Unmarshal(decodeEnvelope(t, w).Data, &records); err != nil {
		t.Fatalf("解析批次明细失败: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].OldPath != paths[0] || records[0].Status != "Success" {
		t.Errorf("unexpected record: %+v", records[0])
	}
	if records[0].NewPath == "" || records[0].Hash == "" {
		t.Errorf("expected new path and hash, got %+v", records[0])
	}
}

func TestHistoryBatchNotFound(t *testing.T) {
	setupTestConfig(t, true)

	ctx, w := newTestContext("GET", "/api/v1/history/no-such-batch", nil)
	ctx.Params = gin.Params{{Key: "id", Value: "no-such-batch"}}
	NewHistoryController(ctx).GetBatch()

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", w.Code)
	}
	if env := decodeEnvelope(t, w); env.Code != string(model.ErrorCodeNotFound) {
		t.Errorf("expected NOT_FOUND, got %q", env.Code)
	}
}

func TestHistoryLimitDefault(t *testing.T) {
	setupTestConfig(t, true)

	// limit 非法时回退默认值，不报错
	ctx, w := newTestContext("GET", "/api/v1/history?limit=abc", nil)
	NewHistoryController(ctx).ListBatches()

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d, body: %s", w.Code, w.Body.String())
	}
	var batches []model.HistoryBatch
	if err := json.Unmarshal(decodeEnvelope(t, w).Data, &batches); err != nil {
		t.Fatalf("解析批次列表失败: %v", err)
	}
	if len(batches) != 0 {
		t.Errorf("expected empty history, got %d", len(batches))
	}
}
