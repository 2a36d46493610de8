package main

import (
	"net/http"
	"time"
)

// Chat webhooks answer fast or not at all; a stuck delivery must not hold a
// scheduled report run open.
const chatHTTPTimeout = 30 * time.Second

var chatHTTPClient = &http.Client{
	Timeout: chatHTTPTimeout,
}
