package ecobee

import (
	"context"
)

// ThermostatSummary retrieves the revision stamps and equipment status rows
// for the thermostats matched by the selection. Poll this (at most every 3
// minutes) and compare revisions to decide whether a full Thermostats read
// is needed.
func (c *Client) ThermostatSummary(ctx context.Context, sel *Selection) (*ThermostatSummaryResponse, error) {
	if sel == nil {
		return nil, ErrNilSelection
	}

	fields, err := encodeFields(sel)
	if err != nil {
		return nil, err
	}

	body, err := c.get(ctx, thermostatSummaryPath, map[string]any{"selection": fields})
	if err != nil {
		return nil, err
	}

	return decodeResponse[*ThermostatSummaryResponse](body, "ThermostatSummaryResponse")
}

// Thermostats retrieves one page of thermostats matched by the selection,
// with the data blocks chosen by the selection's include flags. Pass a nil
// page for the first page.
func (c *Client) Thermostats(ctx context.Context, sel *Selection, page *Page) (*ThermostatResponse, error) {
	if sel == nil {
		return nil, ErrNilSelection
	}

	fields, err := encodeFields(sel)
	if err != nil {
		return nil, err
	}

	payload := map[string]any{"selection": fields}
	if page != nil {
		pageFields, err := encodeFields(page)
		if err != nil {
			return nil, err
		}
		payload["page"] = pageFields
	}

	body, err := c.get(ctx, thermostatPath, payload)
	if err != nil {
		return nil, err
	}

	return decodeResponse[*ThermostatResponse](body, "ThermostatResponse")
}

// AllThermostats follows the page links and returns every thermostat matched
// by the selection.
func (c *Client) AllThermostats(ctx context.Context, sel *Selection) ([]*Thermostat, error) {
	var all []*Thermostat
	var page *Page

	for {
		resp, err := c.Thermostats(ctx, sel, page)
		if err != nil {
			return nil, err
		}
		all = append(all, resp.ThermostatList...)

		if resp.Page == nil || resp.Page.Page == nil || resp.Page.TotalPages == nil {
			return all, nil
		}
		if *resp.Page.Page >= *resp.Page.TotalPages {
			return all, nil
		}
		page = &Page{Page: Int(*resp.Page.Page + 1)}
	}
}

// UpdateThermostats writes settings and runs functions against the selected
// thermostats. The thermostat argument is a sparse update template and may be
// nil; functions run in order after the template is applied.
func (c *Client) UpdateThermostats(ctx context.Context, sel *Selection, thermostat *Thermostat, fns ...Function) (*UpdateThermostatResponse, error) {
	if sel == nil {
		return nil, ErrNilSelection
	}

	selFields, err := encodeFields(sel)
	if err != nil {
		return nil, err
	}

	reqBody := map[string]any{"selection": selFields}

	if thermostat != nil {
		thermostatFields, err := encodeFields(thermostat)
		if err != nil {
			return nil, err
		}
		reqBody["thermostat"] = thermostatFields
	}

	if len(fns) > 0 {
		encoded := make([]map[string]any, 0, len(fns))
		for _, fn := range fns {
			ef, err := fn.encode()
			if err != nil {
				return nil, err
			}
			encoded = append(encoded, ef)
		}
		reqBody["functions"] = encoded
	}

	body, err := c.post(ctx, thermostatPath, reqBody)
	if err != nil {
		return nil, err
	}

	return decodeResponse[*UpdateThermostatResponse](body, "UpdateThermostatResponse")
}
