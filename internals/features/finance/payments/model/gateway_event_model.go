package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

/*
  payment_gateway_events = webhook/callback log from the payment gateway.
  - Many rows per payment (one per callback/notification)
  - Keeps raw headers, payload, signature and the processing status,
    so notifications can be audited and replayed.
  - Unique (provider, external_id, event_type) makes re-delivery idempotent.
*/

const (
	GatewayEventStatusReceived  = "received"
	GatewayEventStatusProcessed = "processed"
	GatewayEventStatusIgnored   = "ignored"
	GatewayEventStatusFailed    = "failed"
)

type PaymentGatewayEvent struct {
	GatewayEventID uuid.UUID `gorm:"column:gateway_event_id;type:uuid;default:gen_random_uuid();primaryKey" json:"gateway_event_id"`

	GatewayEventPaymentID     *uuid.UUID `gorm:"column:gateway_event_payment_id;type:uuid;index" json:"gateway_event_payment_id"`
	GatewayEventInstallmentID *uuid.UUID `gorm:"column:gateway_event_installment_id;type:uuid;index" json:"gateway_event_installment_id"`

	// Provider & event identity
	GatewayEventProvider    string  `gorm:"column:gateway_event_provider;type:varchar(20);not null;uniqueIndex:uq_gw_event_provider_extid_type" json:"gateway_event_provider"`
	GatewayEventType        *string `gorm:"column:gateway_event_type;uniqueIndex:uq_gw_event_provider_extid_type" json:"gateway_event_type"`
	GatewayEventExternalID  *string `gorm:"column:gateway_event_external_id;uniqueIndex:uq_gw_event_provider_extid_type" json:"gateway_event_external_id"`
	GatewayEventExternalRef *string `gorm:"column:gateway_event_external_ref" json:"gateway_event_external_ref"`

	// Raw data (debug / replay)
	GatewayEventHeaders   datatypes.JSON `gorm:"column:gateway_event_headers;type:jsonb" json:"gateway_event_headers"`
	GatewayEventPayload   datatypes.JSON `gorm:"column:gateway_event_payload;type:jsonb" json:"gateway_event_payload"`
	GatewayEventSignature *string        `gorm:"column:gateway_event_signature" json:"gateway_event_signature"`
	GatewayEventRawQuery  *string        `gorm:"column:gateway_event_raw_query" json:"gateway_event_raw_query"`

	// Internal processing status
	GatewayEventStatus   string  `gorm:"column:gateway_event_status;type:varchar(20);not null;default:'received'" json:"gateway_event_status"`
	GatewayEventError    *string `gorm:"column:gateway_event_error" json:"gateway_event_error"`
	GatewayEventTryCount int     `gorm:"column:gateway_event_try_count;not null;default:0" json:"gateway_event_try_count"`

	// Timestamps
	GatewayEventReceivedAt  time.Time  `gorm:"column:gateway_event_received_at;not null;autoCreateTime" json:"gateway_event_received_at"`
	GatewayEventProcessedAt *time.Time `gorm:"column:gateway_event_processed_at" json:"gateway_event_processed_at"`

	GatewayEventCreatedAt time.Time `gorm:"column:gateway_event_created_at;not null;autoCreateTime" json:"gateway_event_created_at"`
	GatewayEventUpdatedAt time.Time `gorm:"column:gateway_event_updated_at;not null;autoUpdateTime" json:"gateway_event_updated_at"`
}

func (PaymentGatewayEvent) TableName() string {
	return "payment_gateway_events"
}
