package entity

import "time"

// Estados del seguimiento de entrega.
const (
	DeliveryAssigned  = "assigned"
	DeliveryPickedUp  = "picked-up"
	DeliveryInTransit = "in-transit"
	DeliveryDelivered = "delivered"
	DeliveryFailed    = "failed"
)

var deliveryTransitions = map[string][]string{
	DeliveryAssigned:  {DeliveryPickedUp, DeliveryFailed},
	DeliveryPickedUp:  {DeliveryInTransit, DeliveryFailed},
	DeliveryInTransit: {DeliveryDelivered, DeliveryFailed},
}

// CanTransitionDelivery indica si el cambio de estado de entrega from -> to es válido.
func CanTransitionDelivery(from, to string) bool {
	for _, next := range deliveryTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// DeliveryInfo es el seguimiento de entrega asociado a un pedido de tipo delivery.
type DeliveryInfo struct {
	ID                 string     `json:"id"`
	OrderID            string     `json:"orderId"`
	DeliveryPersonID   string     `json:"deliveryPersonId"`
	DeliveryPersonName string     `json:"deliveryPersonName"`
	EstimatedTime      time.Time  `json:"estimatedDeliveryTime"`
	ActualTime         *time.Time `json:"actualDeliveryTime,omitempty"`
	Status             string     `json:"status"`
	Address            string     `json:"address"`
	CustomerPhone      string     `json:"customerPhone"`
}
