package Transport1D

import (
	"fmt"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/notargets/gopn/FE1D"
	"github.com/notargets/gopn/InputParameters"
	"github.com/notargets/gopn/PN1D"
	"github.com/notargets/gopn/utils"
)

// Transport is a single energy group, steady state PN slab problem
type Transport struct {
	Title      string
	El         *FE1D.LagrangeElement
	Mesh       PN1D.Mesh
	Mat        PN1D.Materials
	Asm        *PN1D.Assembler
	Sys        *PN1D.System
	Solution   utils.Vector
	PlotFile   string
	PlotPoints int
}

func NewTransport(ip *InputParameters.InputParametersPN1D) (c *Transport, err error) {
	if err = ip.Validate(); err != nil {
		return
	}
	c = &Transport{
		Title:      ip.Title,
		PlotFile:   ip.PlotFile,
		PlotPoints: ip.PlotPoints,
	}
	if c.El, err = FE1D.NewLagrangeElement(ip.PolynomialOrder); err != nil {
		return
	}
	regions := make([]PN1D.Region, len(ip.Regions))
	for i, r := range ip.Regions {
		regions[i] = PN1D.Region{
			Length: r.Length,
			SigmaT: r.SigmaT,
			SigmaS: r.SigmaS,
			Source: r.Source,
		}
	}
	if c.Mesh, c.Mat, err = PN1D.BuildElementsAndMaterials(regions, ip.ElementsPerCm, ip.NMax,
		ip.EnergyGroup, c.El.Dim()); err != nil {
		return
	}
	if c.Asm, err = PN1D.NewAssembler(c.El, c.Mesh, c.Mat, ip.NMax, ip.BCType()); err != nil {
		return
	}
	c.Asm.ParallelDegree = ip.ParallelDegree
	fmt.Printf("Polynomial Degree N = %d (1 is linear), Num Elements K = %d, NMax = %d\nBoundary Condition: %s\n\n",
		c.El.Degree, c.Mesh.NumElements(), ip.NMax, c.Asm.BC)
	return
}

// Run assembles and solves the system, then optionally plots the scalar flux
func (c *Transport) Run(showGraph bool) (err error) {
	var (
		start = time.Now()
	)
	if c.Sys, err = c.Asm.Assemble(); err != nil {
		return
	}
	n := c.Sys.Size()
	fmt.Printf("Assembled %d x %d system, %d stored entries, %d spatial DOFs x %d moments in %v\n",
		n, n, c.Sys.A.NNZ(), c.Sys.Dofs.NGlobal, c.Sys.NMoments, time.Since(start))
	start = time.Now()
	if c.Solution, err = PN1D.Solve(c.Sys); err != nil {
		return
	}
	phi0 := utils.NewVector(c.Sys.Dofs.NGlobal, c.Moment(0))
	fmt.Printf("Solved in %v, max_resid = %8.4e, scalar flux min = %8.6f, max = %8.6f\n",
		time.Since(start), PN1D.Residual(c.Sys, c.Solution), phi0.Min(), phi0.Max())
	if showGraph {
		if err = c.Plot(c.PlotFile); err != nil {
			return
		}
		fmt.Printf("Scalar flux plotted to %s\n", c.PlotFile)
	}
	return
}

// Moment returns the spatial DOF values of angular moment k
func (c *Transport) Moment(k int) []float64 {
	return PN1D.MomentSlice(c.Solution.Data(), c.Sys.Dofs, k)
}

// ScalarFlux interpolates the k = 0 moment at x
func (c *Transport) ScalarFlux(x []float64) []float64 {
	return PN1D.InterpolateSolution(c.El, c.Mesh, c.Sys.Dofs, c.Moment(0), x)
}

func (c *Transport) Plot(fileName string) (err error) {
	var (
		nodes = c.Mesh.Nodes
		x     = utils.Linspace(nodes[0], nodes[len(nodes)-1], c.PlotPoints)
		phi   = c.ScalarFlux(x)
		pts   = make(plotter.XYs, len(x))
		line  *plotter.Line
	)
	for i := range x {
		pts[i].X, pts[i].Y = x[i], phi[i]
	}
	p := plot.New()
	p.Title.Text = c.Title
	p.X.Label.Text = "x (cm)"
	p.Y.Label.Text = "Scalar Flux"
	if line, err = plotter.NewLine(pts); err != nil {
		return
	}
	p.Add(plotter.NewGrid(), line)
	if err = p.Save(6*vg.Inch, 4*vg.Inch, fileName); err != nil {
		err = fmt.Errorf("unable to save plot %s: %v", fileName, err)
	}
	return
}
