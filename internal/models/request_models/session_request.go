package request_models

type CreateSessionRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	CourseID    string  `json:"course_id" binding:"required"`
	ModuleID    *string `json:"module_id"`
	Date        string  `json:"date" binding:"required,datetime=2006-01-02"`
	Time        string  `json:"time" binding:"required,datetime=15:04"`
	Duration    int     `json:"duration" binding:"required,gt=0"`
	Teacher     string  `json:"teacher"`
}
