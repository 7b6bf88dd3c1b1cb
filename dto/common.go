package dto

// PaginationQuery là tham số phân trang chung trên query string
type PaginationQuery struct {
	Page  int `form:"page,default=1" binding:"omitempty,min=1"`
	Limit int `form:"limit,default=10" binding:"omitempty,min=1,max=100"`
}
