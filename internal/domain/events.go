package domain

import "fmt"

const (
	ObjectCreatedEvent = "s3:ObjectCreated"
	ObjectRemovedEvent = "s3:ObjectRemoved"
)

// Subject attached to every outbound upload notification.
const UploadSubject = "New S3 Upload Notification"

// UploadEvent is a single object-level notification, flattened from the S3
// wire format. Consumed exactly once and discarded.
type UploadEvent struct {
	Bucket   string
	Key      string // S3 Object key
	Event    string // S3 event (i.e. "s3:ObjectCreated", "s3:ObjectRemoved", etc.)
	SourceIp string
	Size     int64
}

// NotificationMessage is the outbound payload handed to a Publisher.
type NotificationMessage struct {
	Subject string
	Body    string
}

func NewUploadMessage(event UploadEvent) NotificationMessage {
	return NotificationMessage{
		Subject: UploadSubject,
		Body:    fmt.Sprintf("File uploaded: %s in bucket %s", event.Key, event.Bucket),
	}
}

// Response is the invocation result, in Lambda proxy form.
type Response struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}
