package vo

import "errors"

var ErrNotFound = errors.New("not found")
var ErrStoreOperationFailed = errors.New("store operation failed")
var ErrInvalidRequest = errors.New("invalid request")
var ErrGatewayUnavailable = errors.New("gateway unavailable")
var ErrProviderRejected = errors.New("provider rejected request")
var ErrLinkReferenceExpired = errors.New("link reference expired")
