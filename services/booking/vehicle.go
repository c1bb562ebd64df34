package booking

import (
	"context"

	"glossify/models"

	"go.uber.org/zap"
)

// SaveNewVehicle sends a wizard-entered vehicle to the backend, which
// assigns its ID. Already-saved vehicles pass through unchanged.
func (svc *Service) SaveNewVehicle(ctx context.Context, sess *Session) error {
	form := sess.FormData()
	if form.VehicleStep == nil || form.VehicleStep.Vehicle == nil {
		return &PreconditionError{Op: "SaveNewVehicle", Reason: "no vehicle entered"}
	}
	if form.VehicleStep.IsExisting {
		return nil
	}

	sess.isLoading = true
	created, err := svc.API.CreateVehicle(ctx, *form.VehicleStep.Vehicle)
	sess.isLoading = false

	if err != nil {
		svc.logger.Error("vehicle create failed",
			zap.String("sessionId", sess.ID()), zap.Error(err))
		return &TransportError{Op: "SaveNewVehicle", Err: err}
	}

	form.VehicleStep.Vehicle = created
	form.VehicleStep.IsExisting = true

	sess.emit(EventDataUpdated, models.StepVehicle, map[string]any{
		"vehicleId": created.ID,
	})
	sess.checkpoint(ctx)
	return nil
}
