package services

import (
	"errors"

	"go-booking/models"
	"go-booking/repositories"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func requireAdmin(caller models.Identity) (models.AdminIdentity, error) {
	admin, ok := caller.(models.AdminIdentity)
	if !ok {
		return models.AdminIdentity{}, newError(ErrForbidden, "Admin only")
	}
	return admin, nil
}

func requireUser(caller models.Identity, message string) (models.UserIdentity, error) {
	user, ok := caller.(models.UserIdentity)
	if !ok {
		return models.UserIdentity{}, newError(ErrForbidden, "%s", message)
	}
	return user, nil
}

// parseID converts a hex string to an ObjectID, reporting a validation
// error naming what was expected
func parseID(hex, what string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, newError(ErrValidation, "Invalid %s ID", what)
	}
	return id, nil
}

// notFound turns repositories.ErrNotFound into a not-found *Error carrying
// message and passes any other error through
func notFound(err error, message string) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return newError(ErrNotFound, "%s", message)
	}
	return err
}
