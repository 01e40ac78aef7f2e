package v1

import (
	ledger_uuid "github.com/dailyledger/backend/internal/uuid"
)

type URIID struct {
	ID ledger_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

type URIEntryImage struct {
	URIID
	ImageID ledger_uuid.UUID `uri:"imageId" binding:"required" format:"UUID"` // ID of the attached image
}
