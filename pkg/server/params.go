package server

import (
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/matzehuels/ledwire/pkg/core/cable"
	"github.com/matzehuels/ledwire/pkg/errors"
	"github.com/matzehuels/ledwire/pkg/pipeline"
	"github.com/matzehuels/ledwire/pkg/plan"
)

// parseOptions overlays query parameters on the server defaults.
//
//	cols, rows     grid size
//	lan, power     run length of the harness, or "none" for no run grouping
//	feeds          feed points for every harness
//	numbers        draw order numbers (bool)
//	scale          diagram scale, 0.5 to 2.0
//	refresh        bypass the cache (bool)
func parseOptions(q url.Values, defaults pipeline.Options) (pipeline.Options, error) {
	opts := pipeline.Options{
		Cols:        defaults.Cols,
		Rows:        defaults.Rows,
		Policies:    slices.Clone(defaults.Policies),
		HideNumbers: defaults.HideNumbers,
		Scale:       defaults.Scale,
		Logger:      defaults.Logger,
	}
	if opts.Cols == 0 {
		opts.Cols = pipeline.DefaultCols
	}
	if opts.Rows == 0 {
		opts.Rows = pipeline.DefaultRows
	}
	if len(opts.Policies) == 0 {
		opts.Policies = plan.DefaultPolicies()
	}

	var err error
	if opts.Cols, err = intParam(q, "cols", opts.Cols); err != nil {
		return opts, err
	}
	if opts.Rows, err = intParam(q, "rows", opts.Rows); err != nil {
		return opts, err
	}

	for i, hp := range opts.Policies {
		v := strings.TrimSpace(q.Get(string(hp.Harness)))
		if v == "" {
			continue
		}
		if strings.EqualFold(v, "none") {
			opts.Policies[i].Policy.MaxRunLength = nil
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return opts, errors.New(errors.ErrCodeInvalidInput, "%s: %q is not a run length or \"none\"", hp.Harness, v)
		}
		opts.Policies[i].Policy.MaxRunLength = cable.RunLength(n)
	}

	if q.Has("feeds") {
		feeds, err := intParam(q, "feeds", 0)
		if err != nil {
			return opts, err
		}
		for i := range opts.Policies {
			opts.Policies[i].Policy.FeedPoints = feeds
		}
	}

	show, err := boolParam(q, "numbers", !opts.HideNumbers)
	if err != nil {
		return opts, err
	}
	opts.HideNumbers = !show
	if opts.Refresh, err = boolParam(q, "refresh", false); err != nil {
		return opts, err
	}
	if v := q.Get("scale"); v != "" {
		if opts.Scale, err = strconv.ParseFloat(v, 64); err != nil {
			return opts, errors.New(errors.ErrCodeInvalidInput, "scale: %q is not a number", v)
		}
	}

	return opts, nil
}

func intParam(q url.Values, name string, def int) (int, error) {
	v := q.Get(name)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, errors.New(errors.ErrCodeInvalidInput, "%s: %q is not an integer", name, v)
	}
	return n, nil
}

func boolParam(q url.Values, name string, def bool) (bool, error) {
	v := q.Get(name)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, errors.New(errors.ErrCodeInvalidInput, "%s: %q is not a boolean", name, v)
	}
	return b, nil
}
