package repositories

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"reservation-service/internal/module/payment/models/response"
	"reservation-service/internal/pkg/errors"

	"github.com/goccy/go-json"
	"go.elastic.co/apm"
)

// PayPal v2 Checkout. A timed-out call is treated as failed-but-possibly-
// applied; callers must re-query order status before retrying, reusing the
// same provider order id so PayPal's own idempotency prevents double charges.

type accessTokenResponse struct {
	AccessToken string `json:"access_token"`
}

type providerOrder struct {
	ID            string `json:"id"`
	Status        string `json:"status"`
	PurchaseUnits []struct {
		Payments struct {
			Captures []struct {
				ID     string `json:"id"`
				Status string `json:"status"`
				Amount struct {
					CurrencyCode string `json:"currency_code"`
					Value        string `json:"value"`
				} `json:"amount"`
			} `json:"captures"`
		} `json:"payments"`
	} `json:"purchase_units"`
}

func (r *repositories) getAccessToken(ctx context.Context) (string, error) {
	reqBody := strings.NewReader("grant_type=client_credentials")
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fmt.Sprintf("%s/v1/oauth2/token", r.cfgPayPal.BaseURL), reqBody)
	if err != nil {
		return "", err
	}
	req.SetBasicAuth(r.cfgPayPal.ClientID, r.cfgPayPal.ClientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to get access token, status: %s", resp.Status)
	}

	var tokenResp accessTokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tokenResp); err != nil {
		return "", err
	}
	return tokenResp.AccessToken, nil
}

// CreateProviderOrder implements Repositories.
func (r *repositories) CreateProviderOrder(ctx context.Context, amount float64, currency, returnURL, cancelURL string) (string, error) {
	accessToken, err := r.getAccessToken(ctx)
	if err != nil {
		apm.CaptureError(ctx, err).Send()
		return "", errors.InternalServerError("error authenticating with payment provider")
	}

	payload := map[string]interface{}{
		"intent": "CAPTURE",
		"purchase_units": []map[string]interface{}{
			{
				"amount": map[string]string{
					"currency_code": currency,
					"value":         strconv.FormatFloat(amount, 'f', 2, 64),
				},
			},
		},
		"application_context": map[string]string{
			"return_url": returnURL,
			"cancel_url": cancelURL,
		},
	}
	body, _ := json.Marshal(payload)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fmt.Sprintf("%s/v2/checkout/orders", r.cfgPayPal.BaseURL), bytes.NewBuffer(body))
	if err != nil {
		return "", errors.InternalServerError("error build provider request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", accessToken))

	resp, err := r.httpClient.Do(req)
	if err != nil {
		apm.CaptureError(ctx, err).Send()
		return "", errors.InternalServerError("error creating provider order")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		respBody, _ := io.ReadAll(resp.Body)
		// raw provider bodies are logged, never surfaced to clients
		r.log.Ctx(ctx).Error(fmt.Sprintf("provider create order failed, status %d: %s", resp.StatusCode, string(respBody)))
		return "", errors.InternalServerError("error creating provider order")
	}

	var order providerOrder
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return "", errors.InternalServerError("error parse provider order")
	}
	return order.ID, nil
}

// CaptureProviderOrder implements Repositories.
func (r *repositories) CaptureProviderOrder(ctx context.Context, providerOrderID string) (response.CaptureReceipt, error) {
	accessToken, err := r.getAccessToken(ctx)
	if err != nil {
		apm.CaptureError(ctx, err).Send()
		return response.CaptureReceipt{}, errors.PaymentFailed("payment could not be completed")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fmt.Sprintf("%s/v2/checkout/orders/%s/capture", r.cfgPayPal.BaseURL, providerOrderID), nil)
	if err != nil {
		return response.CaptureReceipt{}, errors.InternalServerError("error build provider request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", accessToken))

	resp, err := r.httpClient.Do(req)
	if err != nil {
		apm.CaptureError(ctx, err).Send()
		return response.CaptureReceipt{}, errors.PaymentFailed("payment could not be completed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		r.log.Ctx(ctx).Error(fmt.Sprintf("provider capture failed, status %d: %s", resp.StatusCode, string(respBody)))
		return response.CaptureReceipt{}, errors.PaymentFailed(captureFailureReason(respBody))
	}

	var order providerOrder
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return response.CaptureReceipt{}, errors.InternalServerError("error parse capture response")
	}

	receipt := response.CaptureReceipt{ProviderOrderID: order.ID}
	if len(order.PurchaseUnits) > 0 && len(order.PurchaseUnits[0].Payments.Captures) > 0 {
		capture := order.PurchaseUnits[0].Payments.Captures[0]
		receipt.TransactionID = capture.ID
		receipt.Currency = capture.Amount.CurrencyCode
		receipt.Amount, _ = strconv.ParseFloat(capture.Amount.Value, 64)
	}
	if receipt.TransactionID == "" {
		return response.CaptureReceipt{}, errors.PaymentFailed("payment could not be completed")
	}
	return receipt, nil
}

// GetProviderOrderStatus re-queries provider state, used after a timed-out
// write before deciding on a retry.
func (r *repositories) GetProviderOrderStatus(ctx context.Context, providerOrderID string) (string, error) {
	accessToken, err := r.getAccessToken(ctx)
	if err != nil {
		return "", errors.InternalServerError("error authenticating with payment provider")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/v2/checkout/orders/%s", r.cfgPayPal.BaseURL, providerOrderID), nil)
	if err != nil {
		return "", errors.InternalServerError("error build provider request")
	}
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", accessToken))

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return "", errors.InternalServerError("error get provider order")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errors.InternalServerError("error get provider order")
	}

	var order providerOrder
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return "", errors.InternalServerError("error parse provider order")
	}
	return order.Status, nil
}

// RefundProviderCapture implements Repositories.
func (r *repositories) RefundProviderCapture(ctx context.Context, transactionID string, amount float64, currency, reason string) error {
	accessToken, err := r.getAccessToken(ctx)
	if err != nil {
		apm.CaptureError(ctx, err).Send()
		return errors.InternalServerError("error authenticating with payment provider")
	}

	payload := map[string]interface{}{
		"amount": map[string]string{
			"currency_code": currency,
			"value":         strconv.FormatFloat(amount, 'f', 2, 64),
		},
		"note_to_payer": reason,
	}
	body, _ := json.Marshal(payload)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fmt.Sprintf("%s/v2/payments/captures/%s/refund", r.cfgPayPal.BaseURL, transactionID), bytes.NewBuffer(body))
	if err != nil {
		return errors.InternalServerError("error build provider request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", accessToken))

	resp, err := r.httpClient.Do(req)
	if err != nil {
		apm.CaptureError(ctx, err).Send()
		return errors.InternalServerError("error refunding capture")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		r.log.Ctx(ctx).Error(fmt.Sprintf("provider refund failed, status %d: %s", resp.StatusCode, string(respBody)))
		return errors.InternalServerError("error refunding capture")
	}
	return nil
}

func captureFailureReason(body []byte) string {
	var providerErr struct {
		Details []struct {
			Issue string `json:"issue"`
		} `json:"details"`
	}
	if err := json.Unmarshal(body, &providerErr); err == nil && len(providerErr.Details) > 0 {
		switch providerErr.Details[0].Issue {
		case "INSTRUMENT_DECLINED":
			return "payment method was declined"
		case "ORDER_NOT_APPROVED":
			return "payment has not been approved"
		}
	}
	return "payment could not be completed"
}
