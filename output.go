package commah

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"commah/cosmo"
)

// cosmoHeader formats the one line cosmology comment at the top of an
// output file.
func cosmoHeader(p cosmo.Params) string {
	return fmt.Sprintf(
		"# Cosmology (flat) Om:%.3f, Ol:%.3f, h:%.2f, sigma8:%.3f, ns:%.2f",
		p.OmegaM, p.OmegaL, p.H, p.Sigma8, p.N,
	)
}

var mahComColumns = []string{
	"# Initial z - Initial Halo  - Output z -  Accretion -  Final Halo  - " +
		"concentration -     Mass   -    Peak    -  Formation z ",
	"#           -     mass      -          -    rate    -     mass     - " +
		"              -  Variance  -   Height   -              ",
	"#           -    (M200)     -          -   (dM/dt)  -    (M200)    - " +
		"              -   (sigma)  -    (nu)    -              ",
	"#           -    [Msol]     -          -  [Msol/yr] -    [Msol]    - " +
		"              -            -            -              ",
}

var mahColumns = []string{
	"# Initial z - Initial Halo  - Output z -   Accretion - Final Halo ",
	"#           -     mass      -          -     rate    -   mass     ",
	"#           -    (M200)     -          -    (dm/dt)  -  (M200)    ",
	"#           -    [Msol]     -          -   [Msol/yr] -  [Msol]    ",
}

var comColumns = []string{
	"# Initial z - Initial Halo  - Output z -  concentration - " +
		"  Mass    -    Peak    -  Formation z ",
	"#           -     mass      -          -                - " +
		" Variance  -   Height   -              ",
	"#           -   (M200)      -          -                - " +
		" (sigma)  -    (nu)    -              ",
	"#           -   [Msol]      -          -                - " +
		"          -            -            ",
}

// Write writes the table in the plain text format of the original commah
// code: a cosmology header comment, column description comments, then one
// comma separated line per row. Degenerate rows carry -1 in the
// concentration columns.
func (t *Table) Write(w io.Writer, p cosmo.Params) error {
	bw := bufio.NewWriter(w)

	headers := comColumns
	switch {
	case t.MAH && t.COM:
		headers = mahComColumns
	case t.MAH:
		headers = mahColumns
	}

	fmt.Fprintln(bw, cosmoHeader(p))
	for _, line := range headers {
		fmt.Fprintln(bw, line)
	}

	for _, r := range t.Rows {
		switch {
		case t.MAH && t.COM:
			fmt.Fprintf(bw, "%g, %g, %g, %g, %g, %g, %g, %g, %g\n",
				r.Zi, r.Mi, r.Z, r.DMdt, r.Mz, r.C, r.Sigma, r.Nu, r.Zf)
		case t.MAH:
			fmt.Fprintf(bw, "%g, %g, %g, %g, %g\n",
				r.Zi, r.Mi, r.Z, r.DMdt, r.Mz)
		default:
			fmt.Fprintf(bw, "%g, %g, %g, %g, %g, %g, %g\n",
				r.Zi, r.Mi, r.Z, r.C, r.Sigma, r.Nu, r.Zf)
		}
	}

	return bw.Flush()
}

// WriteFile writes the table to the named file, replacing it if it exists.
func (t *Table) WriteFile(fname string, p cosmo.Params) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := t.Write(f, p); err != nil {
		return err
	}
	return f.Sync()
}
