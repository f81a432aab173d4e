package domain

import "time"

type S3Object struct {
	Key       string `json:"key"`
	Size      int64  `json:"size"`
	ETag      string `json:"eTag"`
	Sequencer string `json:"sequencer"`
}

type S3BucketOwnerIdentity struct {
	PrincipalId string `json:"principalId"`
}

type S3Bucket struct {
	Name          string                `json:"name"`
	OwnerIdentity S3BucketOwnerIdentity `json:"ownerIdentity"`
	Arn           string                `json:"arn"`
}

type S3Record struct {
	S3SchemaVersion string   `json:"s3SchemaVersion"`
	ConfigurationId string   `json:"configurationId"`
	Bucket          S3Bucket `json:"bucket"`
	Object          S3Object `json:"object"`
}

type ResponseElements struct {
	RequestId string `json:"x-amz-request-id"`
	Id2       string `json:"x-amz-id-2"`
}

type RequestParameters struct {
	SourceIPAddress string `json:"sourceIPAddress"`
}

type UserIdentity struct {
	PrincipalId string `json:"principalId"`
}

type JsonTime time.Time

const timeFormat = "2006-01-02T15:04:05.999Z"

func (t JsonTime) MarshalJSON() ([]byte, error) {
	return []byte("\"" + time.Time(t).Format(timeFormat) + "\""), nil
}

func (t *JsonTime) UnmarshalJSON(bytes []byte) error {
	newTime, err := time.Parse("\""+timeFormat+"\"", string(bytes))
	if err != nil {
		return err
	}

	*t = JsonTime(newTime)
	return nil
}

type EventRecord struct {
	EventVersion      string            `json:"eventVersion"`
	EventSource       string            `json:"eventSource"`
	AwsRegion         string            `json:"awsRegion"`
	EventTime         JsonTime          `json:"eventTime"`
	EventName         string            `json:"eventName"`
	UserIdentity      UserIdentity      `json:"userIdentity"`
	RequestParameters RequestParameters `json:"requestParameters"`
	ResponseElements  ResponseElements  `json:"responseElements"`
	S3                S3Record          `json:"s3"`
}

// Upload flattens the record for dispatching. The record's eventName comes
// without the "s3:" prefix on the wire.
func (r EventRecord) Upload() UploadEvent {
	return UploadEvent{
		Bucket:   r.S3.Bucket.Name,
		Key:      r.S3.Object.Key,
		Event:    "s3:" + r.EventName,
		SourceIp: r.RequestParameters.SourceIPAddress,
		Size:     r.S3.Object.Size,
	}
}

// Event is the payload delivered for one or more object notifications.
type Event struct {
	Records []EventRecord `json:"Records"`
}
