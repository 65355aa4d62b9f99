package handler

type ContextKey string

var (
	SubCtxKey    ContextKey = "sub"
	StaffInfoCtx ContextKey = "staffInfo"
)
