package admin_service

import (
	"strings"
	"testing"

	"resto-admin/inout"
	"resto-admin/model/admin_model"
)

func TestSanitizeOrderParams(t *testing.T) {
	cases := []struct {
		name     string
		in       inout.OrderListReq
		page     int
		pageSize int
	}{
		{"零值取默认", inout.OrderListReq{}, 1, 10},
		{"负数取默认", inout.OrderListReq{Page: -1, PageSize: -5}, 1, 10},
		{"超上限取默认", inout.OrderListReq{Page: 2, PageSize: 500}, 2, 10},
		{"正常值保留", inout.OrderListReq{Page: 3, PageSize: 20}, 3, 20},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := sanitizeOrderParams(tc.in)
			if got.Page != tc.page || got.PageSize != tc.pageSize {
				t.Errorf("got page=%d size=%d, want page=%d size=%d",
					got.Page, got.PageSize, tc.page, tc.pageSize)
			}
		})
	}
}

func TestIsValidStatusTransition(t *testing.T) {
	valid := [][2]string{
		{admin_model.OrderStatusPending, admin_model.OrderStatusPaid},
		{admin_model.OrderStatusPending, admin_model.OrderStatusCancelled},
		{admin_model.OrderStatusPaid, admin_model.OrderStatusCompleted},
		{admin_model.OrderStatusPaid, admin_model.OrderStatusCancelled},
	}
	for _, pair := range valid {
		if !isValidStatusTransition(pair[0], pair[1]) {
			t.Errorf("%s -> %s 应为合法流转", pair[0], pair[1])
		}
	}

	invalid := [][2]string{
		{admin_model.OrderStatusCompleted, admin_model.OrderStatusPending},
		{admin_model.OrderStatusCancelled, admin_model.OrderStatusPaid},
		{admin_model.OrderStatusPending, admin_model.OrderStatusCompleted},
		{admin_model.OrderStatusPaid, admin_model.OrderStatusPending},
		{"unknown", admin_model.OrderStatusPaid},
	}
	for _, pair := range invalid {
		if isValidStatusTransition(pair[0], pair[1]) {
			t.Errorf("%s -> %s 应为非法流转", pair[0], pair[1])
		}
	}
}

func TestGenerateOrderNo(t *testing.T) {
	no1 := generateOrderNo(12)
	no2 := generateOrderNo(12)

	if no1 == no2 {
		t.Error("订单号应唯一")
	}
	if !strings.Contains(no1, "12") {
		t.Errorf("订单号应包含餐厅ID: %s", no1)
	}
}

func TestGenerateOrderCacheKey(t *testing.T) {
	key := generateOrderCacheKey(3, inout.OrderListReq{
		Page: 2, PageSize: 10, Status: "paid", No: "A1", Start: "2024-05-01", End: "2024-05-02",
	})
	want := "order:list:3:2:10:paid:A1:2024-05-01:2024-05-02"
	if key != want {
		t.Errorf("key = %s, want %s", key, want)
	}
}
