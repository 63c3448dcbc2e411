package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Supakit1111/FiveM-Wab/internal/dto"
	"github.com/Supakit1111/FiveM-Wab/internal/model"
	"github.com/Supakit1111/FiveM-Wab/internal/service"
)

// InventoryHandler 仓库模块 HTTP 处理器
type InventoryHandler struct {
	invSvc service.InventoryService
}

// NewInventoryHandler 创建 InventoryHandler
func NewInventoryHandler(invSvc service.InventoryService) *InventoryHandler {
	return &InventoryHandler{invSvc: invSvc}
}

// txType 解析表单里的流水类型，默认入库
func txType(raw string) model.TransactionType {
	if raw == string(model.TxWithdrawal) {
		return model.TxWithdrawal
	}
	return model.TxDeposit
}

// Ledger 仓库页（物品 + 流水）
// GET /inventory
func (h *InventoryHandler) Ledger(c *gin.Context) {
	sess, ok := MustGetSession(c)
	if !ok {
		return
	}

	var filter dto.HistoryFilter
	_ = c.ShouldBindQuery(&filter)

	view, err := h.invSvc.Ledger(c.Request.Context(), sess.APIToken, &filter)
	if err != nil {
		c.HTML(http.StatusOK, "inventory.html", gin.H{
			"Session": sess,
			"Err":     errMessage(err),
		})
		return
	}

	c.HTML(http.StatusOK, "inventory.html", gin.H{
		"Session": sess,
		"View":    view,
		"Filter":  filter,
		"Msg":     c.Query("msg"),
		"PageErr": c.Query("err"),
	})
}

// MyTransactions 我的流水页
// GET /inventory/me
func (h *InventoryHandler) MyTransactions(c *gin.Context) {
	sess, ok := MustGetSession(c)
	if !ok {
		return
	}

	txs, err := h.invSvc.MyTransactions(c.Request.Context(), sess.APIToken)
	if err != nil {
		c.HTML(http.StatusOK, "inventory_me.html", gin.H{
			"Session": sess,
			"Err":     errMessage(err),
		})
		return
	}

	c.HTML(http.StatusOK, "inventory_me.html", gin.H{
		"Session":      sess,
		"Transactions": txs,
	})
}

// Summary 单日出入库汇总页
// GET /inventory/summary
func (h *InventoryHandler) Summary(c *gin.Context) {
	sess, ok := MustGetSession(c)
	if !ok {
		return
	}

	date := c.Query("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	rows, err := h.invSvc.DailySummary(c.Request.Context(), sess.APIToken, date)
	if err != nil {
		c.HTML(http.StatusOK, "inventory_summary.html", gin.H{
			"Session": sess,
			"Date":    date,
			"Err":     errMessage(err),
		})
		return
	}

	c.HTML(http.StatusOK, "inventory_summary.html", gin.H{
		"Session": sess,
		"Date":    date,
		"Rows":    rows,
	})
}

// CreateItem 创建物品（管理员）
// POST /inventory/items
func (h *InventoryHandler) CreateItem(c *gin.Context) {
	sess, ok := MustGetSession(c)
	if !ok {
		return
	}

	var form dto.ItemForm
	if err := c.ShouldBind(&form); err != nil {
		redirectWithErr(c, "/inventory", errors.New("กรุณากรอกชื่อไอเทม"))
		return
	}

	if err := h.invSvc.CreateItem(c.Request.Context(), sess.APIToken, &form); err != nil {
		redirectWithErr(c, "/inventory", err)
		return
	}
	redirectWithMsg(c, "/inventory", "เพิ่มไอเทมแล้ว")
}

// UpdateItem 编辑物品（管理员）
// POST /inventory/items/:id
func (h *InventoryHandler) UpdateItem(c *gin.Context) {
	sess, ok := MustGetSession(c)
	if !ok {
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		redirectWithErr(c, "/inventory", errors.New("ไอเทมไม่ถูกต้อง"))
		return
	}

	var form dto.ItemForm
	if err := c.ShouldBind(&form); err != nil {
		redirectWithErr(c, "/inventory", errors.New("กรุณากรอกชื่อไอเทม"))
		return
	}

	if err := h.invSvc.UpdateItem(c.Request.Context(), sess.APIToken, id, &form); err != nil {
		redirectWithErr(c, "/inventory", err)
		return
	}
	redirectWithMsg(c, "/inventory", "บันทึกไอเทมแล้ว")
}

// DeleteItem 删除物品（管理员）
// POST /inventory/items/:id/delete
func (h *InventoryHandler) DeleteItem(c *gin.Context) {
	sess, ok := MustGetSession(c)
	if !ok {
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		redirectWithErr(c, "/inventory", errors.New("ไอเทมไม่ถูกต้อง"))
		return
	}

	if err := h.invSvc.DeleteItem(c.Request.Context(), sess.APIToken, id); err != nil {
		redirectWithErr(c, "/inventory", err)
		return
	}
	redirectWithMsg(c, "/inventory", "ลบไอเทมแล้ว")
}

// Preview 出入库确认页
// POST /inventory/preview
func (h *InventoryHandler) Preview(c *gin.Context) {
	sess, ok := MustGetSession(c)
	if !ok {
		return
	}

	var req dto.TransactionRequest
	if err := c.ShouldBind(&req); err != nil {
		redirectWithErr(c, "/inventory", service.ErrInvalidQuantity)
		return
	}

	preview, err := h.invSvc.Preview(c.Request.Context(), sess.APIToken, txType(c.PostForm("type")), &req)
	if err != nil {
		redirectWithErr(c, "/inventory", err)
		return
	}

	c.HTML(http.StatusOK, "inventory_confirm.html", gin.H{
		"Session": sess,
		"Preview": preview,
	})
}

// Submit 提交出入库
// POST /inventory/submit
func (h *InventoryHandler) Submit(c *gin.Context) {
	sess, ok := MustGetSession(c)
	if !ok {
		return
	}

	var req dto.TransactionRequest
	if err := c.ShouldBind(&req); err != nil {
		redirectWithErr(c, "/inventory", service.ErrInvalidQuantity)
		return
	}

	if err := h.invSvc.Submit(c.Request.Context(), sess.APIToken, txType(c.PostForm("type")), &req); err != nil {
		redirectWithErr(c, "/inventory", err)
		return
	}
	redirectWithMsg(c, "/inventory", "บันทึกรายการแล้ว")
}
