package service

import (
	"context"
	"errors"
	"log"

	"github.com/Cheertaboi/shop-admin/internal/apperr"
	"github.com/Cheertaboi/shop-admin/internal/events"
	"github.com/Cheertaboi/shop-admin/internal/repository"
	"github.com/Cheertaboi/shop-admin/internal/validation"
)

// reject converts err into an *apperr.Error and logs business-rule
// rejections under tag. subject names the resource in not-found messages.
func reject(tag, subject string, err error) error {
	if err == nil {
		return nil
	}
	if ae, ok := apperr.As(err); ok {
		if ae.Status < 500 {
			log.Printf("[%s] %s", tag, ae.Message)
		}
		return ae
	}

	var fieldErrs validation.Errors
	var single validation.Error
	switch {
	case errors.As(err, &fieldErrs):
		log.Printf("[%s] %v", tag, fieldErrs)
		return apperr.Invalid(validation.MsgFieldsIncorrect, fieldErrs)
	case errors.As(err, &single):
		log.Printf("[%s] %s", tag, single)
		return apperr.BadRequest(single.Error())
	case errors.Is(err, repository.ErrNotFound):
		msg := subject + " " + validation.MsgDataNotFound
		log.Printf("[%s] %s", tag, msg)
		return apperr.NotFound(msg)
	case errors.Is(err, repository.ErrDuplicate):
		msg := subject + " " + validation.MsgDataAlreadyUsed
		log.Printf("[%s] %s", tag, msg)
		return apperr.BadRequest(msg)
	}
	return apperr.Internal(err)
}

// publish records an audit event. Failures are logged and never fail the
// request that already committed.
func publish(ctx context.Context, pub events.Publisher, e events.Event) {
	if pub == nil {
		return
	}
	if err := pub.Publish(ctx, e); err != nil {
		log.Printf("[events] %v", err)
	}
}
