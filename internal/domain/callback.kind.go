package domain

// CallbackKind identifies which asynchronous flow a gateway callback answers.
type CallbackKind int

const (
	CallbackDiscovery CallbackKind = iota + 1
	CallbackLinkConfirmation
	CallbackHealthInformation
	CallbackConsentRequest
	CallbackConsentNotification
)

func (k CallbackKind) String() string {
	switch k {
	case CallbackDiscovery:
		return "on-discover"
	case CallbackLinkConfirmation:
		return "on-confirm"
	case CallbackHealthInformation:
		return "on-request"
	case CallbackConsentRequest:
		return "on-init"
	case CallbackConsentNotification:
		return "hiu-notify"
	default:
		return "unknown"
	}
}

// Path is the route the gateway posts this kind of callback to.
func (k CallbackKind) Path() string {
	switch k {
	case CallbackDiscovery:
		return "/v1/care-contexts/on-discover"
	case CallbackLinkConfirmation:
		return "/v1/links/link/on-confirm"
	case CallbackHealthInformation:
		return "/v1/health-information/on-request"
	case CallbackConsentRequest:
		return "/v1/consent-requests/on-init"
	case CallbackConsentNotification:
		return "/v1/consents/hiu/notify"
	default:
		return ""
	}
}

// AnswersRequest reports whether the callback carries resp.requestId of a
// request this service sent. Consent notifications are pushed unprompted.
func (k CallbackKind) AnswersRequest() bool {
	return k != CallbackConsentNotification
}
