package commah

import (
	"errors"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"commah/cosmo"
)

// ErrNoOutputs is returned when a Run call requests neither the accretion
// history nor the concentration-mass relation.
var ErrNoOutputs = errors.New("nothing to compute: select MAH and/or COM")

// Options configures a Run call. Zi and Mi follow array broadcasting rules:
// each is either one value shared by all samples or one value per sample,
// and two arrays longer than one must have equal length.
type Options struct {
	Zi []float64 // initial redshifts
	Mi []float64 // halo masses [Msun] at Zi
	Z  []float64 // output redshifts; empty means "evaluate at Zi only"

	MAH bool // solve for the accretion rate and mass history
	COM bool // solve for the concentration-mass relation

	Filename string      // optional text file sink for the output table
	Workers  int         // samples computed in parallel; <= 1 runs serially
	Logger   *zap.Logger // nil silences diagnostics
}

// Row is one line of the output table: one halo sample evaluated at one
// output redshift Z >= Zi. The MAH and COM column groups are only populated
// when the corresponding output was requested; Degenerate marks rows whose
// concentration solve failed, with C, Sigma, Nu and Zf set to -1.
type Row struct {
	Zi, Mi, Z float64

	DMdt float64 // accretion rate, Msun/yr
	Mz   float64 // progenitor mass at Z, Msun

	C     float64 // NFW concentration
	Sigma float64 // mass variance at Mz
	Nu    float64 // peak height
	Zf    float64 // formation redshift

	Degenerate bool
}

// Table is the assembled output of a Run call. Rows are ordered by sample,
// then by target redshift within a sample.
type Table struct {
	MAH, COM bool // which column groups are populated
	Rows     []Row
}

// Run evaluates the accretion model for every halo sample described by opt
// under the given cosmology. It returns the output table and the resolved
// cosmology record. Structural problems (no outputs requested, ambiguous
// input sizes, unknown cosmology) fail the whole call; a degenerate
// concentration solve only flags its own row.
func Run(spec CosmologySpec, opt Options) (*Table, cosmo.Params, error) {
	log := opt.Logger
	if log == nil {
		log = zap.NewNop()
	}

	if !opt.MAH && !opt.COM {
		return nil, cosmo.Params{}, ErrNoOutputs
	}

	zi, mi, err := reconcileInput(opt.Zi, opt.Mi)
	if err != nil {
		return nil, cosmo.Params{}, err
	}

	p, err := ResolveCosmology(spec)
	if err != nil {
		return nil, cosmo.Params{}, err
	}
	log.Info("resolved cosmology",
		zap.Float64("OmegaM", p.OmegaM),
		zap.Float64("OmegaL", p.OmegaL),
		zap.Float64("h", p.H),
		zap.Float64("sigma8", p.Sigma8),
		zap.Float64("AScaling", p.AScaling),
		zap.Int("samples", len(zi)))

	// Samples only share the immutable parameter record, so they can run in
	// parallel; each worker writes a disjoint slot.
	perSample := make([][]Row, len(zi))
	if opt.Workers > 1 {
		g := new(errgroup.Group)
		g.SetLimit(opt.Workers)
		for i := range zi {
			i := i
			g.Go(func() error {
				rows, err := runSample(zi[i], mi[i], opt, p, log)
				if err != nil {
					return err
				}
				perSample[i] = rows
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, cosmo.Params{}, err
		}
	} else {
		for i := range zi {
			rows, err := runSample(zi[i], mi[i], opt, p, log)
			if err != nil {
				return nil, cosmo.Params{}, err
			}
			perSample[i] = rows
		}
	}

	t := &Table{MAH: opt.MAH, COM: opt.COM}
	for _, rows := range perSample {
		t.Rows = append(t.Rows, rows...)
	}

	if opt.Filename != "" {
		if err := t.WriteFile(opt.Filename, p); err != nil {
			return nil, cosmo.Params{}, err
		}
		log.Info("wrote output table",
			zap.String("file", opt.Filename), zap.Int("rows", len(t.Rows)))
	}

	return t, p, nil
}

// runSample evaluates one (zi, Mi) halo over its valid target redshifts.
// The accretion history is always computed, even in COM-only runs: the
// concentration solve consumes the freshly accreted mass at each target
// epoch rather than the starting mass.
func runSample(
	zi, Mi float64, opt Options, p cosmo.Params, log *zap.Logger,
) ([]Row, error) {
	targets := targetRedshifts(zi, opt.Z)
	if len(targets) == 0 {
		log.Debug("sample has no target redshifts at or above zi",
			zap.Float64("zi", zi), zap.Float64("Mi", Mi))
		return nil, nil
	}
	log.Debug("running sample",
		zap.Float64("zi", zi), zap.Float64("Mi", Mi),
		zap.Int("targets", len(targets)))

	dMdt, Mz, err := mah(targets, zi, Mi, p)
	if err != nil {
		return nil, err
	}

	rows := make([]Row, len(targets))
	for i := range rows {
		rows[i] = Row{Zi: zi, Mi: Mi, Z: targets[i], DMdt: dMdt[i], Mz: Mz[i]}
	}

	if opt.COM {
		results, err := com(targets, Mz, p, log)
		if err != nil {
			return nil, err
		}
		for i, r := range results {
			rows[i].C, rows[i].Sigma, rows[i].Nu, rows[i].Zf = r.c, r.sig, r.nu, r.zf
			rows[i].Degenerate = r.degenerate
		}
	}

	return rows, nil
}
