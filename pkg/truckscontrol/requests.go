package truckscontrol

import (
	"context"
	"fmt"
)

// The API takes credentials inline in every operation document rather than
// via HTTP auth.

func (c *Client) Vehicles(ctx context.Context) (*Element, error) {
	body := fmt.Sprintf("<RequestVeiculo>\n  <login>%s</login>\n  <senha>%s</senha>\n</RequestVeiculo>", c.login, c.password)

	return c.Call(ctx, "vehicles", body)
}

func (c *Client) Drivers(ctx context.Context) (*Element, error) {
	body := fmt.Sprintf("<RequestMotorista>\n  <login>%s</login>\n  <senha>%s</senha>\n</RequestMotorista>", c.login, c.password)

	return c.Call(ctx, "drivers", body)
}

// Messages performs the incremental fetch: cursor is the highest message id
// already seen and acts as the exclusive lower bound upstream.
func (c *Client) Messages(ctx context.Context, cursor string) (*Element, error) {
	body := fmt.Sprintf("<RequestMensagemCB>\n  <login>%s</login>\n  <senha>%s</senha>\n  <mId>%s</mId>\n</RequestMensagemCB>", c.login, c.password, cursor)

	return c.Call(ctx, "messages", body)
}

// TrailerRequestFormats is the number of request shapes Trailers accepts.
// The upstream has historically switched between element-form and
// attribute-form credentials for this operation, so callers try both.
const TrailerRequestFormats = 2

func (c *Client) Trailers(ctx context.Context, format int) (*Element, error) {
	var body string
	switch format {
	case 0:
		body = fmt.Sprintf("<RequestCarretas>\n  <login>%s</login>\n  <senha>%s</senha>\n</RequestCarretas>", c.login, c.password)
	default:
		body = fmt.Sprintf("<RequestCarretas login=%q senha=%q/>", c.login, c.password)
	}

	return c.Call(ctx, "trailers", body)
}
