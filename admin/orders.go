package admin

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/tealeg/xlsx"

	"piwkina-shop/models"
	"piwkina-shop/statemachine"
	"piwkina-shop/store"
)

// StatusAll disables status filtering.
const StatusAll = "all"

type Orders struct {
	orders store.Collection
	items  store.Collection
}

func NewOrders(backend store.Backend) *Orders {
	return &Orders{
		orders: backend.Collection(store.Orders),
		items:  backend.Collection(store.OrderItems),
	}
}

// List returns every order, newest first, without items.
func (o *Orders) List(ctx context.Context) ([]models.Order, error) {
	list, err := listAll(ctx, o.orders, store.Query{OrderBy: store.Desc("created_at")}, models.OrderFromRow)
	if err != nil {
		logFailure(err, "list", "order", "")
		return nil, err
	}
	return list, nil
}

// UpdateStatus moves a pending order to completed or cancelled.
func (o *Orders) UpdateStatus(ctx context.Context, id string, to models.OrderStatus) (models.Order, error) {
	row, err := store.FindByID(ctx, o.orders, id)
	if err != nil {
		return models.Order{}, fmt.Errorf("load order %s: %w", id, err)
	}
	order := models.OrderFromRow(row)
	if err := statemachine.CanTransition(order.Status, to, statemachine.ActorAdmin); err != nil {
		return models.Order{}, err
	}
	if err := o.orders.Update(ctx, id, store.Row{"status": string(to)}); err != nil {
		logFailure(err, "update_status", "order", id)
		return models.Order{}, fmt.Errorf("update order %s: %w", id, err)
	}
	order.Status = to
	return order, nil
}

// Detail loads an order together with its line items.
func (o *Orders) Detail(ctx context.Context, id string) (models.Order, error) {
	row, err := store.FindByID(ctx, o.orders, id)
	if err != nil {
		return models.Order{}, fmt.Errorf("load order %s: %w", id, err)
	}
	order := models.OrderFromRow(row)
	items, err := listAll(ctx, o.items, store.Query{Where: map[string]any{"order_id": id}}, models.OrderItemFromRow)
	if err != nil {
		logFailure(err, "detail", "order", id)
		return models.Order{}, fmt.Errorf("load items of order %s: %w", id, err)
	}
	order.Items = items
	return order, nil
}

// FilterOrders matches search against customer name (any case), phone or id
// and keeps only orders with the given status unless status is "all".
func FilterOrders(orders []models.Order, search, status string) []models.Order {
	needle := strings.ToLower(search)
	out := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		matchesSearch := strings.Contains(strings.ToLower(o.CustomerName), needle) ||
			strings.Contains(o.CustomerPhone, search) ||
			strings.Contains(strings.ToLower(o.ID), needle)
		matchesStatus := status == "" || status == StatusAll || string(o.Status) == status
		if matchesSearch && matchesStatus {
			out = append(out, o)
		}
	}
	return out
}

// Export writes every order, with one row per line item, as an xlsx workbook.
func (o *Orders) Export(ctx context.Context, w io.Writer) error {
	orders, err := o.List(ctx)
	if err != nil {
		return err
	}
	items, err := listAll(ctx, o.items, store.Query{}, models.OrderItemFromRow)
	if err != nil {
		logFailure(err, "export", "order_item", "")
		return err
	}
	byOrder := make(map[string][]models.OrderItem)
	for _, it := range items {
		byOrder[it.OrderID] = append(byOrder[it.OrderID], it)
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Orders")
	if err != nil {
		return fmt.Errorf("create orders sheet: %w", err)
	}
	headerRow := sheet.AddRow()
	for _, h := range []string{"OrderID", "CreatedAt", "Status", "Customer", "Phone", "Email", "Address", "Total", "Notes"} {
		headerRow.AddCell().SetValue(h)
	}
	for _, ord := range orders {
		row := sheet.AddRow()
		row.AddCell().SetValue(ord.ID)
		row.AddCell().SetValue(ord.CreatedAt.Format("2006-01-02 15:04:05"))
		row.AddCell().SetValue(string(ord.Status))
		row.AddCell().SetValue(ord.CustomerName)
		row.AddCell().SetValue(ord.CustomerPhone)
		row.AddCell().SetValue(ord.CustomerEmail)
		row.AddCell().SetValue(ord.CustomerAddress)
		row.AddCell().SetValue(ord.TotalAmount)
		row.AddCell().SetValue(ord.Notes)
	}

	itemSheet, err := file.AddSheet("Items")
	if err != nil {
		return fmt.Errorf("create items sheet: %w", err)
	}
	headerRow = itemSheet.AddRow()
	for _, h := range []string{"OrderID", "ItemID", "ProductID", "Quantity", "WeightKg", "UnitPrice", "TotalPrice"} {
		headerRow.AddCell().SetValue(h)
	}
	for _, ord := range orders {
		for _, it := range byOrder[ord.ID] {
			row := itemSheet.AddRow()
			row.AddCell().SetValue(ord.ID)
			row.AddCell().SetValue(it.ID)
			row.AddCell().SetValue(it.ProductID)
			row.AddCell().SetValue(it.Quantity)
			row.AddCell().SetValue(it.WeightKg)
			row.AddCell().SetValue(it.UnitPrice)
			row.AddCell().SetValue(it.TotalPrice)
		}
	}

	if err := file.Write(w); err != nil {
		return fmt.Errorf("write orders workbook: %w", err)
	}
	return nil
}
