package http

import (
	"encoding/json"
	"net/http"

	"github.com/ATenderholt/rainbow-notify/internal/domain"
	"github.com/ATenderholt/rainbow-notify/internal/service"
	"github.com/ATenderholt/rainbow-notify/internal/settings"
	"github.com/go-chi/chi/v5"
)

type NotifierHandler struct {
	cfg           *settings.Config
	notifier      *service.EventNotifier
	notifications *service.NotificationService
}

func NewNotifierHandler(cfg *settings.Config, notifier *service.EventNotifier, notifications *service.NotificationService) NotifierHandler {
	return NotifierHandler{
		cfg:           cfg,
		notifier:      notifier,
		notifications: notifications,
	}
}

// Invoke runs the notifier directly against a posted event, mirroring a
// Lambda invocation.
func (h NotifierHandler) Invoke(response http.ResponseWriter, request *http.Request) {
	var event domain.Event
	err := json.NewDecoder(request.Body).Decode(&event)
	if err != nil {
		logger.Errorf("Unable to decode event: %v", err)
		http.Error(response, "malformed event", http.StatusBadRequest)
		return
	}

	result, err := h.notifier.Handle(request.Context(), event)
	if err != nil {
		http.Error(response, err.Error(), http.StatusInternalServerError)
		return
	}

	response.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(response).Encode(result)
	if err != nil {
		logger.Errorf("Unable to encode response: %v", err)
	}
}

// PutNotification stores the notification configuration for a bucket and
// starts its dispatch pipeline.
func (h NotifierHandler) PutNotification(response http.ResponseWriter, request *http.Request) {
	bucket := chi.URLParam(request, "bucket")

	var config domain.NotificationConfiguration
	err := json.NewDecoder(request.Body).Decode(&config)
	if err != nil {
		logger.Errorf("Unable to decode NotificationConfiguration for bucket %s: %v", bucket, err)
		http.Error(response, "malformed configuration", http.StatusBadRequest)
		return
	}

	path, err := h.notifications.Save(bucket, config)
	if err != nil {
		http.Error(response, err.Error(), http.StatusInternalServerError)
		return
	}

	err = h.notifications.Load(path)
	if err != nil {
		http.Error(response, err.Error(), http.StatusInternalServerError)
		return
	}

	response.WriteHeader(http.StatusNoContent)
}

// PostEvent feeds the records of a posted event into the bucket's pipeline.
func (h NotifierHandler) PostEvent(response http.ResponseWriter, request *http.Request) {
	bucket := chi.URLParam(request, "bucket")

	var event domain.Event
	err := json.NewDecoder(request.Body).Decode(&event)
	if err != nil {
		logger.Errorf("Unable to decode event for bucket %s: %v", bucket, err)
		http.Error(response, "malformed event", http.StatusBadRequest)
		return
	}

	if len(event.Records) == 0 {
		http.Error(response, "event contains no records", http.StatusBadRequest)
		return
	}

	for _, record := range event.Records {
		upload := record.Upload()
		if upload.Bucket == "" {
			upload.Bucket = bucket
		}

		err := h.notifications.ProcessEvent(upload)
		if err != nil {
			http.Error(response, err.Error(), http.StatusNotFound)
			return
		}
	}

	response.WriteHeader(http.StatusAccepted)
}
