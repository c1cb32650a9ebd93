package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un pedido.
const (
	OrderPending    = "pending"
	OrderPreparing  = "preparing"
	OrderReady      = "ready"
	OrderInDelivery = "in-delivery"
	OrderCompleted  = "completed"
	OrderCancelled  = "cancelled"
)

// Tipos de pedido.
const (
	OrderDineIn   = "dine-in"
	OrderTakeout  = "takeout"
	OrderDelivery = "delivery"
)

// orderTransitions define el grafo de transiciones válidas de estado.
// Cancelar es válido desde cualquier estado no terminal.
var orderTransitions = map[string][]string{
	OrderPending:    {OrderPreparing, OrderCancelled},
	OrderPreparing:  {OrderReady, OrderCancelled},
	OrderReady:      {OrderInDelivery, OrderCompleted, OrderCancelled},
	OrderInDelivery: {OrderCompleted, OrderCancelled},
}

// CanTransition indica si el cambio de estado from -> to es válido.
func CanTransition(from, to string) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Order es un pedido del restaurante.
type Order struct {
	ID           string          `json:"id"`
	CustomerID   string          `json:"customerId"`
	CustomerName string          `json:"customerName"`
	Items        []OrderItem     `json:"items"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	Status       string          `json:"status"`
	OrderType    string          `json:"orderType"` // dine-in, takeout, delivery
	CreatedAt    time.Time       `json:"createdAt"`
	DeliveryInfo *DeliveryInfo   `json:"deliveryInfo,omitempty"`
}

// OrderItem es una línea de un pedido.
type OrderItem struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Notes    string          `json:"notes,omitempty"`
}
