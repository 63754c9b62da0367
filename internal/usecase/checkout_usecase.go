package usecase

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/MUNENE1212/baitech26-sub002/internal/domain/model"
)

// 注文番号の採番
type IDGenerator interface {
	NewID() string
}

// CheckoutUsecase はカートの内容からWhatsApp注文メッセージとURLを組み立てる。
// 注文の送信・確定はWhatsApp側（店舗とのチャット）で行われ、
// カートを空にするのも呼び出し側の責務（自動では消さない）。
type CheckoutUsecase struct {
	facade *CartFacade
	number string
	idGen  IDGenerator
}

// DI。numberは国番号込みのWhatsApp番号（例 254799954672）。
func NewCheckoutUsecase(facade *CartFacade, number string, idGen IDGenerator) *CheckoutUsecase {
	return &CheckoutUsecase{
		facade: facade,
		number: number,
		idGen:  idGen,
	}
}

// GET /cart/checkout-url の出力DTO
type CheckoutOutput struct {
	URL        string `json:"url"`
	Message    string `json:"message"`
	OrderRef   string `json:"order_ref"`
	TotalItems int64  `json:"total_items"`
	TotalPrice int64  `json:"total_price"`
}

// BuildOrderURL は現在のカートから wa.me のチェックアウトURLを作る。
func (u *CheckoutUsecase) BuildOrderURL(ctx context.Context) (CheckoutOutput, error) {
	view := u.facade.View()

	if !view.IsHydrated {
		return CheckoutOutput{}, NewHTTPError(http.StatusServiceUnavailable, "cart not ready")
	}
	if len(view.Items) == 0 {
		return CheckoutOutput{}, NewHTTPError(http.StatusBadRequest, "cart is empty")
	}

	ref := u.idGen.NewID()
	if len(ref) > 8 {
		ref = ref[:8]
	}

	msg := buildOrderMessage(view.Items, view.TotalPrice, ref)

	return CheckoutOutput{
		URL:        "https://wa.me/" + u.number + "?text=" + url.QueryEscape(msg),
		Message:    msg,
		OrderRef:   ref,
		TotalItems: view.TotalItems,
		TotalPrice: view.TotalPrice,
	}, nil
}

// 金額の桁区切り（Ksh 3,000 形式）
var kshPrinter = message.NewPrinter(language.English)

// フロント時代のメッセージ文面をそのまま踏襲する
func buildOrderMessage(items []model.CartItem, total int64, ref string) string {
	var b strings.Builder

	b.WriteString("Hello Baitech! 👋\n\n")
	b.WriteString("I would like to place an order for the following items:\n\n")

	for i, it := range items {
		if i > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "%d. *%s*\n", i+1, it.Name)
		fmt.Fprintf(&b, "   Quantity: %d\n", it.Quantity)
		fmt.Fprintf(&b, "   Price: Ksh %s", kshPrinter.Sprintf("%d", it.Price*it.Quantity))
	}

	b.WriteString("\n\n━━━━━━━━━━━━━━━━━\n")
	fmt.Fprintf(&b, "💵 *Total: Ksh %s*\n\n", kshPrinter.Sprintf("%d", total))
	fmt.Fprintf(&b, "Order Ref: %s\n\n", ref)
	b.WriteString("Please confirm availability and delivery details. Thank you!")

	return b.String()
}
