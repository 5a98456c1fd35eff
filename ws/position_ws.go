package ws

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/carlossbezerra/SuperDelivery/services"
	"github.com/carlossbezerra/SuperDelivery/utils"
	"github.com/gin-gonic/gin"
)

// PositionFeed streams the simulated courier coordinate for an active
// delivery. The ticker lives exactly as long as the connection: closing
// the socket stops the simulation, so navigating away never leaks a
// timer.
type PositionFeed struct {
	Svc      *services.DeliveryService
	Interval time.Duration
}

func NewPositionFeed(svc *services.DeliveryService, interval time.Duration) *PositionFeed {
	return &PositionFeed{Svc: svc, Interval: interval}
}

// HandleWebSocket serves /ws/deliveries/:id/position.
func (f *PositionFeed) HandleWebSocket(c *gin.Context) {
	id64, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid delivery id"})
		return
	}

	courierID := utils.CurrentUserID(c)
	d, err := f.Svc.Active(courierID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if d == nil || d.ID != uint(id64) {
		c.JSON(http.StatusNotFound, gin.H{"error": "no active delivery"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}
	defer conn.Close()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	pos := services.Position{Lat: d.PickupLat, Lng: d.PickupLng}
	dest := services.Position{Lat: d.DropoffLat, Lng: d.DropoffLng}

	ticker := time.NewTicker(f.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			pos = services.AdvancePosition(pos, dest)
			if err := conn.WriteJSON(pos); err != nil {
				return
			}
		}
	}
}
