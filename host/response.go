package host

import (
	"fmt"

	"github.com/bitfsorg/ecopayout-go/address"
	"github.com/bitfsorg/ecopayout-go/contract"
)

// Response is the outcome of a successful invocation.
type Response struct {
	Messages []CosmosMsg    `json:"messages"`
	Log      []LogAttribute `json:"log"`
}

// CosmosMsg is an outbound message. Send is the only kind produced.
type CosmosMsg struct {
	Send *SendMsg `json:"send,omitempty"`
}

// SendMsg transfers coins between human-readable addresses.
type SendMsg struct {
	FromAddress string          `json:"from_address"`
	ToAddress   string          `json:"to_address"`
	Amount      []contract.Coin `json:"amount"`
}

// LogAttribute is one key/value pair of the structured log.
type LogAttribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// buildResponse renders effects with human-readable addresses.
func buildResponse(api address.API, effects []contract.Effect) (Response, error) {
	resp := Response{Messages: []CosmosMsg{}, Log: []LogAttribute{}}
	for _, e := range effects {
		switch e := e.(type) {
		case contract.Transfer:
			from, err := api.Humanize(e.From)
			if err != nil {
				return Response{}, fmt.Errorf("%w: from address: %w", ErrRender, err)
			}
			to, err := api.Humanize(e.To)
			if err != nil {
				return Response{}, fmt.Errorf("%w: to address: %w", ErrRender, err)
			}
			resp.Messages = append(resp.Messages, CosmosMsg{Send: &SendMsg{
				FromAddress: from,
				ToAddress:   to,
				Amount:      e.Amount,
			}})
		case contract.Log:
			human, err := api.Humanize(e.Address)
			if err != nil {
				return Response{}, fmt.Errorf("%w: log %s: %w", ErrRender, e.Key, err)
			}
			resp.Log = append(resp.Log,
				LogAttribute{Key: "action", Value: e.Action},
				LogAttribute{Key: e.Key, Value: human},
			)
		default:
			return Response{}, fmt.Errorf("%w: unknown effect %T", ErrRender, e)
		}
	}
	return resp, nil
}
