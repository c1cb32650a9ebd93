package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/elbuensabor/backoffice-api/internal/domain/entity"
)

func TestCanTransition_CicloDeVidaNormal(t *testing.T) {
	assert.True(t, entity.CanTransition(entity.OrderPending, entity.OrderPreparing))
	assert.True(t, entity.CanTransition(entity.OrderPreparing, entity.OrderReady))
	assert.True(t, entity.CanTransition(entity.OrderReady, entity.OrderInDelivery))
	assert.True(t, entity.CanTransition(entity.OrderInDelivery, entity.OrderCompleted))
	// Retiro en local: ready pasa directo a completado.
	assert.True(t, entity.CanTransition(entity.OrderReady, entity.OrderCompleted))
}

func TestCanTransition_CancelableDesdeEstadosNoTerminales(t *testing.T) {
	for _, from := range []string{entity.OrderPending, entity.OrderPreparing, entity.OrderReady, entity.OrderInDelivery} {
		assert.True(t, entity.CanTransition(from, entity.OrderCancelled), "debe poder cancelarse desde %s", from)
	}
}

func TestCanTransition_EstadosTerminalesNoSalen(t *testing.T) {
	assert.False(t, entity.CanTransition(entity.OrderCompleted, entity.OrderCancelled))
	assert.False(t, entity.CanTransition(entity.OrderCancelled, entity.OrderPending))
}

func TestCanTransition_NoSePuedeSaltarEstados(t *testing.T) {
	assert.False(t, entity.CanTransition(entity.OrderPending, entity.OrderReady))
	assert.False(t, entity.CanTransition(entity.OrderPending, entity.OrderCompleted))
	assert.False(t, entity.CanTransition(entity.OrderReady, entity.OrderPreparing), "no se puede retroceder")
}

func TestCanTransition_EstadoDesconocido_EsInvalido(t *testing.T) {
	assert.False(t, entity.CanTransition("limbo", entity.OrderPreparing))
	assert.False(t, entity.CanTransition(entity.OrderPending, "limbo"))
}

func TestCanTransitionDelivery_CicloDeVida(t *testing.T) {
	assert.True(t, entity.CanTransitionDelivery(entity.DeliveryAssigned, entity.DeliveryPickedUp))
	assert.True(t, entity.CanTransitionDelivery(entity.DeliveryPickedUp, entity.DeliveryInTransit))
	assert.True(t, entity.CanTransitionDelivery(entity.DeliveryInTransit, entity.DeliveryDelivered))

	assert.False(t, entity.CanTransitionDelivery(entity.DeliveryAssigned, entity.DeliveryDelivered))
	assert.False(t, entity.CanTransitionDelivery(entity.DeliveryDelivered, entity.DeliveryAssigned))
}

func TestCanTransitionDelivery_PuedeFallarEnCualquierEtapaActiva(t *testing.T) {
	for _, from := range []string{entity.DeliveryAssigned, entity.DeliveryPickedUp, entity.DeliveryInTransit} {
		assert.True(t, entity.CanTransitionDelivery(from, entity.DeliveryFailed), "la entrega debe poder fallar desde %s", from)
	}
}
