package services

import (
	"errors"
	"time"

	"github.com/carlossbezerra/SuperDelivery/entity"
	"github.com/carlossbezerra/SuperDelivery/repository"
	"gorm.io/gorm"
)

// MessageSink receives messages that originate inside the service (the
// simulated merchant reply) so the websocket room still sees them.
type MessageSink interface {
	Broadcast(orderID uint, msg *entity.Message)
}

type ChatService struct {
	Repo      *repository.ChatRepository
	OrderRepo *repository.OrderRepository
	RestRepo  *repository.RestaurantRepository
	DelRepo   *repository.DeliveryRepository

	// delay before the canned merchant reply to a customer message
	ReplyDelay time.Duration

	sink MessageSink
}

func NewChatService(cr *repository.ChatRepository, or *repository.OrderRepository,
	rr *repository.RestaurantRepository, dr *repository.DeliveryRepository,
	replyDelay time.Duration) *ChatService {
	return &ChatService{Repo: cr, OrderRepo: or, RestRepo: rr, DelRepo: dr, ReplyDelay: replyDelay}
}

// CanAccess limits an order's chat room to its three participants: the
// customer who placed it, the merchant preparing it, and the courier
// delivering it.
func (s *ChatService) CanAccess(userID uint, role string, orderID uint) (bool, error) {
	o, err := s.OrderRepo.Get(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrUnknownOrder
		}
		return false, err
	}
	switch role {
	case entity.RoleCustomer:
		return o.UserID == userID, nil
	case entity.RoleMerchant:
		rest, err := s.RestRepo.Get(o.RestaurantID)
		if err != nil {
			return false, err
		}
		return rest.OwnerID == userID, nil
	case entity.RoleCourier:
		active, err := s.DelRepo.ActiveForCourier(userID)
		if err != nil {
			return false, err
		}
		return active != nil && active.OrderID != nil && *active.OrderID == orderID, nil
	}
	return false, nil
}

// SetSink wires the websocket hub in after construction.
func (s *ChatService) SetSink(sink MessageSink) { s.sink = sink }

func (s *ChatService) History(orderID uint) ([]entity.Message, error) {
	if _, err := s.OrderRepo.Get(orderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnknownOrder
		}
		return nil, err
	}
	return s.Repo.ListByOrder(orderID)
}

// Send appends the message to the order's log. A customer message also
// schedules one simulated merchant reply after a fixed delay.
func (s *ChatService) Send(orderID, userID uint, role, body string) (*entity.Message, error) {
	if _, err := s.OrderRepo.Get(orderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnknownOrder
		}
		return nil, err
	}

	msg := &entity.Message{
		OrderID:    orderID,
		UserID:     userID,
		SenderRole: role,
		Body:       body,
	}
	if err := s.Repo.CreateMessage(msg); err != nil {
		return nil, err
	}

	if role == entity.RoleCustomer {
		s.scheduleReply(orderID, userID)
	}
	return msg, nil
}

func (s *ChatService) scheduleReply(orderID, userID uint) {
	time.AfterFunc(s.ReplyDelay, func() {
		reply := &entity.Message{
			OrderID:    orderID,
			UserID:     userID,
			SenderRole: entity.RoleMerchant,
			Body:       "Recebido! Obrigado pela mensagem.",
		}
		if err := s.Repo.CreateMessage(reply); err != nil {
			return
		}
		if s.sink != nil {
			s.sink.Broadcast(orderID, reply)
		}
	})
}
