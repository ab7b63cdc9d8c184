package mail

import (
	"context"
	"net/http"
	"time"
)

const (
	probeURL     = "https://api.resend.com"
	probeTimeout = 10 * time.Second
)

// Probe is the result of an email-provider reachability check. Purely
// observational: no state is mutated and nothing is sent.
type Probe struct {
	OK       bool   `json:"ok"`
	Message  string `json:"message"`
	Detail   string `json:"detail,omitempty"`
	Status   int    `json:"status,omitempty"`
	Resolved bool   `json:"resolved"`
}

// CheckReachability performs a bounded-timeout HEAD request against the
// Resend API host and reports whether DNS and the connection work from this
// deployment.
func CheckReachability(ctx context.Context) Probe {
	return checkReachability(ctx, probeURL, &http.Client{Timeout: probeTimeout})
}

func checkReachability(ctx context.Context, url string, client *http.Client) Probe {
	var result Probe

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		result.Message = "Could not build reachability request."
		result.Detail = err.Error()
		return result
	}

	resp, err := client.Do(req)
	if err != nil {
		result.Message = "Host could not reach the email provider."
		result.Detail = err.Error()
		if isNetworkError(err) {
			result.Message += " Likely DNS or network/firewall issue on the server."
		}
		return result
	}
	defer resp.Body.Close()

	result.OK = true
	result.Resolved = true
	result.Status = resp.StatusCode
	switch resp.StatusCode {
	case http.StatusOK, http.StatusUnauthorized, http.StatusNotFound:
		result.Message = "Host can reach the email provider (connection and DNS OK)."
	default:
		result.Message = "Host reached the email provider; unexpected HTTP status."
	}
	return result
}
