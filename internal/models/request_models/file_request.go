package request_models

type FileCreateRequest struct {
	Filename    string `json:"filename" binding:"required"`
	ContentType string `json:"content_type" binding:"required"`
	Category    string `json:"category" binding:"required,oneof=profile_image cover_image"`
	Path        string `json:"path" binding:"required"`
	Hash        string `json:"hash" binding:"required"`
	Description string `json:"description" binding:"omitempty,max=1000"`
}

type FileUpdateRequest struct {
	Filename    *string `json:"filename"`
	ContentType *string `json:"content_type"`
	Category    *string `json:"category" binding:"omitempty,oneof=profile_image cover_image"`
	Path        *string `json:"path"`
	Hash        *string `json:"hash"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
}

type PresignedURLRequest struct {
	Filename    string `form:"filename" binding:"required"`
	ContentType string `form:"content_type"`
}
