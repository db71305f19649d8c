package dto

type SessionWindowRequest struct {
	StartAt        string `json:"start_at" binding:"required"`
	EndAt          string `json:"end_at" binding:"required"`
	DisplayStartAt string `json:"display_start_at"`
	DisplayEndAt   string `json:"display_end_at"`
}

type TierRequest struct {
	Name       string `json:"name" binding:"required"`
	PriceCents int64  `json:"price_cents" binding:"gte=0"`
	Capacity   int    `json:"capacity" binding:"required,gt=0"`
}

type CreateOfferingRequest struct {
	Title         string                 `json:"title" binding:"required"`
	Description   string                 `json:"description"`
	Kind          string                 `json:"kind"`
	Capacity      int                    `json:"capacity" binding:"required,gt=0"`
	TieredPricing bool                   `json:"tiered_pricing"`
	MultiDay      bool                   `json:"multi_day"`
	Sessions      []SessionWindowRequest `json:"sessions"`
	Tiers         []TierRequest          `json:"tiers"`
}

type UpdateOfferingRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Capacity    int    `json:"capacity"`
}

type MultiDayRequest struct {
	MultiDay *bool `json:"multi_day" binding:"required"`
}

type AddSessionsRequest struct {
	Sessions []SessionWindowRequest `json:"sessions" binding:"required,min=1"`
}

type RegisterRequest struct {
	UserID string  `json:"user_id" binding:"required,uuid"`
	TierID *string `json:"tier_id"`
}

type CreateUserRequest struct {
	Username       string `json:"username" binding:"required"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}
