package commands

import (
	"context"
	"log/slog"

	"inventory/internal/core/ports"
)

// Transaction log action names shared by command handlers and the audit export.
const (
	ActionCreateRequest  = "create_request"
	ActionApproveRequest = "approve_request"
	ActionRejectRequest  = "reject_request"
	ActionPickupRequest  = "pickup_request"
	ActionDeliverRequest = "deliver_request"
	ActionPickupReturn   = "pickup_return"
	ActionDeliverReturn  = "deliver_return"
	ActionAddItem        = "add_item"
	ActionUpdateItem     = "update_item"
	ActionRemoveItem     = "remove_item"
	ActionAdjustStock    = "adjust_stock"
)

// appendAudit writes one transaction log entry after a successful commit.
// Append failures are logged and swallowed: the business operation has
// already committed and must not be failed retroactively over auditing.
func appendAudit(ctx context.Context, auditLog ports.AuditLog, entry ports.AuditEntry) {
	if auditLog == nil {
		return
	}

	if err := auditLog.Append(ctx, entry); err != nil {
		slog.Warn("transaction log append failed",
			"action", entry.Action,
			"subject", entry.SubjectRef,
			"error", err)
	}
}
