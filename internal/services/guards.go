package services

import (
	"task-match-service.com/task-match-service/internal/constants"
	apperrors "task-match-service.com/task-match-service/internal/errors"
	model "task-match-service.com/task-match-service/internal/models"
)

// guardResult is the tagged outcome of an authorization or state check.
// Guards never panic and are never used for store failures; a failed
// guard carries the exception the caller should surface.
type guardResult struct {
	ok     bool
	reason *apperrors.Exception
}

func pass() guardResult {
	return guardResult{ok: true}
}

func deny(reason *apperrors.Exception) guardResult {
	return guardResult{reason: reason}
}

func requireRole(actor model.Actor, role constants.Role) guardResult {
	if actor.Role != role {
		return deny(apperrors.ErrPermissionDenied)
	}
	return pass()
}

func requireOwner(actor model.Actor, task *model.Task) guardResult {
	if task.OwnerID != actor.ID {
		return deny(apperrors.ErrPermissionDenied)
	}
	return pass()
}

func requireAssignee(actor model.Actor, task *model.Task) guardResult {
	if task.AssigneeID == nil || *task.AssigneeID != actor.ID {
		return deny(apperrors.ErrPermissionDenied)
	}
	return pass()
}

func requireStatus(task *model.Task, allowed ...constants.TaskStatus) guardResult {
	for _, status := range allowed {
		if task.Status == status {
			return pass()
		}
	}
	return deny(apperrors.ErrInvalidStateTransition)
}
