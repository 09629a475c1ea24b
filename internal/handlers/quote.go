package handlers

import (
	"time"

	"acquiring/internal/services/quote"
	"acquiring/internal/utils/pagination"
	"acquiring/internal/utils/response"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// QuoteRequest is the body of a fee quote. AsOf defaults to the time the
// request is received.
type QuoteRequest struct {
	Amount           *decimal.Decimal `json:"amount"`
	Currency         string           `json:"currency"`
	CumulativeVolume *decimal.Decimal `json:"cumulative_volume"`
	AsOf             *time.Time       `json:"as_of"`
}

type QuoteHandler struct {
	service QuoteService
	now     func() time.Time
}

func NewQuoteHandler(service QuoteService) *QuoteHandler {
	return &QuoteHandler{service: service, now: time.Now}
}

func (h *QuoteHandler) CreateQuote(c *fiber.Ctx) error {
	var body QuoteRequest
	if err := c.BodyParser(&body); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}
	if body.Amount == nil {
		return response.ValidationFailed(c, []string{"amount is required"})
	}

	req := quote.Request{
		MerchantID:       c.Params("merchantId"),
		Amount:           *body.Amount,
		Currency:         body.Currency,
		CumulativeVolume: decimal.Zero,
		AsOf:             h.now().UTC(),
	}
	if body.CumulativeVolume != nil {
		req.CumulativeVolume = *body.CumulativeVolume
	}
	if body.AsOf != nil {
		req.AsOf = *body.AsOf
	}

	q, err := h.service.Quote(c.UserContext(), req)
	if err != nil {
		return response.FromError(c, err)
	}
	return response.Success(c, "Fee computed successfully", q)
}

func (h *QuoteHandler) ListQuotes(c *fiber.Ctx) error {
	p := pagination.ParseFromRequest(c)

	quotes, total, err := h.service.List(c.UserContext(), c.Params("merchantId"), p.Limit, p.Offset)
	if err != nil {
		return response.FromError(c, err)
	}
	p.Total = total
	return c.JSON(pagination.Response(p, quotes))
}
