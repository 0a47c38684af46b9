package v1

var (
	// common errors
	ErrSuccess             = newError(0, "ok")
	ErrBadRequest          = newError(400, "bad request")
	ErrUnauthorized        = newError(401, "unauthorized")
	ErrNotFound            = newError(404, "not found")
	ErrInternalServerError = newError(500, "internal server error")

	// mirror errors
	ErrUpstreamUnauthorized = newError(2001, "civitai api token missing or rejected")
	ErrUpstreamFailed       = newError(2002, "civitai api request failed, please retry later")
	ErrModelNotFound        = newError(2003, "model not found")
	ErrVersionNotFound      = newError(2004, "model version not found")

	// download session errors
	ErrResolveUnauthorized   = newError(3001, "the api token may lack purchase or access rights to this file")
	ErrResolveFailed         = newError(3002, "failed to resolve download url, please retry later")
	ErrDownloaderUnavailable = newError(3003, "download manager is unreachable")

	// transfer task errors
	ErrInvalidTaskSpec     = newError(3101, "task spec requires a save path and a file name")
	ErrTaskAlreadyFinished = newError(3102, "destination file already exists on disk")
	ErrTaskDuplicate       = newError(3103, "an active download task already exists for this resource")
	ErrDownloaderApi       = newError(3104, "download manager rejected the request")
	ErrTaskRecordNotFound  = newError(3105, "no task record found for this resource")
)
