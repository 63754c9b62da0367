package model

// カートの明細（1商品＝1行）。
// name / price / image は追加時点のスナップショットを必ず保持し、
// カタログ側が後から変わっても追従しない。
type CartItem struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Image     string `json:"image,omitempty"`
	Quantity  int64  `json:"quantity"`
}

// 数量合計を計算（保存せず毎回計算する）
func TotalItems(items []CartItem) int64 {
	var total int64 = 0
	for _, it := range items {
		total += it.Quantity
	}
	return total
}

// 金額合計を計算（price × quantity の総和）
func TotalPrice(items []CartItem) int64 {
	var total int64 = 0
	for _, it := range items {
		total += it.Price * it.Quantity
	}
	return total
}
