package stats

import (
	"errors"
	"fmt"
)

// ErrOrderNotFound 按单号重算时订单不存在
var ErrOrderNotFound = errors.New("订单不存在")

// ErrInvalidRestaurant 餐厅ID非法
var ErrInvalidRestaurant = errors.New("餐厅ID非法")

// FetchError 订单或统计数据读取失败，未发生任何写入
type FetchError struct {
	Op  string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("统计读取失败(%s): %v", e.Op, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// PersistError 统计数据写入失败，调用方应视当前统计为过期数据
type PersistError struct {
	Err error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("统计写入失败: %v", e.Err)
}

func (e *PersistError) Unwrap() error { return e.Err }
