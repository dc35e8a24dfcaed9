package main

import (
	"io"

	"github.com/dustin/go-humanize"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/pavanmanishd/vector"
	"github.com/pavanmanishd/vector/promvec"
)

// sample is the element type of the workload.
type sample struct {
	seq   int64
	value float64
	tags  []string
}

// Copy duplicates the tag slice so copies never share it.
func (s *sample) Copy() (sample, error) {
	out := *s
	out.tags = append([]string(nil), s.tags...)
	return out, nil
}

func run(cfg Config, logger log.Logger, out io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	v := vector.New[sample]()
	defer v.Release()

	if err := v.Reserve(cfg.Reserve); err != nil {
		return errors.Wrap(err, "reserve")
	}

	capacity := v.Capacity()
	for i := 0; i < cfg.Elements; i++ {
		s := sample{seq: int64(i), value: float64(i) / 2, tags: []string{"workload"}}
		if err := v.PushBack(s); err != nil {
			return errors.Wrapf(err, "append element %d", i)
		}
		if cfg.InsertEvery > 0 && (i+1)%cfg.InsertEvery == 0 {
			if err := v.Insert(0, sample{seq: -int64(i)}); err != nil {
				return errors.Wrapf(err, "insert after element %d", i)
			}
		}
		if cfg.EraseEvery > 0 && (i+1)%cfg.EraseEvery == 0 {
			if err := v.Erase(v.Size() / 2); err != nil {
				return errors.Wrapf(err, "erase after element %d", i)
			}
		}
		if c := v.Capacity(); c != capacity {
			level.Debug(logger).Log(
				"msg", "vector grew",
				"size", v.Size(),
				"old_capacity", capacity,
				"new_capacity", c,
				"reserved", humanize.IBytes(uint64(v.BytesReserved())),
			)
			capacity = c
		}
	}

	switch cfg.Format {
	case formatProm:
		return writeProm(v, out)
	default:
		return writeLogfmt(v, out)
	}
}

func writeLogfmt(v *vector.Vector[sample], out io.Writer) error {
	m := v.Metrics()
	return log.NewLogfmtLogger(out).Log(
		"size", m.Size,
		"capacity", m.Capacity,
		"in_use", humanize.IBytes(uint64(m.BytesInUse)),
		"reserved", humanize.IBytes(uint64(m.BytesReserved)),
		"utilization", humanize.FormatFloat("#.##", m.Utilization),
		"reallocations", m.Reallocations,
		"relocated", m.Relocated,
	)
}

func writeProm(v *vector.Vector[sample], out io.Writer) error {
	c := promvec.NewCollector("vecstat")
	c.Track("workload", v)

	r := prometheus.NewRegistry()
	if err := r.Register(c); err != nil {
		return err
	}
	mfs, err := r.Gather()
	if err != nil {
		return errors.Wrap(err, "gather metrics")
	}
	for _, mf := range mfs {
		if _, err := expfmt.MetricFamilyToText(out, mf); err != nil {
			return errors.Wrap(err, "write metrics")
		}
	}
	return nil
}
