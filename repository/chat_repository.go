package repository

import (
	"github.com/carlossbezerra/SuperDelivery/entity"
	"gorm.io/gorm"
)

type ChatRepository struct{ DB *gorm.DB }

func NewChatRepository(db *gorm.DB) *ChatRepository { return &ChatRepository{DB: db} }

func (r *ChatRepository) CreateMessage(msg *entity.Message) error {
	return r.DB.Create(msg).Error
}

// ListByOrder returns the order's log oldest first; the log is
// append-only so this is also insertion order.
func (r *ChatRepository) ListByOrder(orderID uint) ([]entity.Message, error) {
	var out []entity.Message
	err := r.DB.Where("order_id = ?", orderID).Order("created_at, id").Find(&out).Error
	return out, err
}
