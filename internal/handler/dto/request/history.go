package request

type HistoryPageQuery struct {
	Page int `form:"page" binding:"min=0"`
	Size int `form:"size" binding:"omitempty,min=1,max=200"`
}
