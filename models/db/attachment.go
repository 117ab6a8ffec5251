package dbmodels

// Attachment is the metadata of a supporting document kept in S3,
// the object itself lives under the request id prefix.
type Attachment struct {
	BaseModel
	RequestID  string `gorm:"type:varchar(36);index"`
	FileName   string `gorm:"type:varchar(255)"`
	ObjectKey  string `gorm:"type:varchar(512)"`
	Size       int64
	UploadedBy string `gorm:"type:varchar(36)"`
}
