package session

import "errors"

var (
	errMissingConfig = errors.New("session: faltan AUTH_DOMAIN, AUTH_CLIENT_ID o AUTH_CALLBACK_URL")
	errMissingSecret = errors.New("session: falta AUTH_JWT_SECRET")
)
