package api

import "time"

type Configuration struct {
	Env            string
	AppName        string
	Port           string
	FrontendUrl    string
	DefaultTimeout time.Duration
}
