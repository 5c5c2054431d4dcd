package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"

	"github.com/notargets/gopn/utils"
)

// RegionParameters describes one homogeneous slab of the problem
//
// SigmaS is indexed [moment][group out][group in], SigmaT and Source by energy group.
type RegionParameters struct {
	Length float64       `json:"Length"`
	SigmaT []float64     `json:"SigmaT"`
	SigmaS [][][]float64 `json:"SigmaS"`
	Source []float64     `json:"Source"`
}

// Parameters obtained from the YAML input file
type InputParametersPN1D struct {
	Title           string             `json:"Title"`
	PolynomialOrder int                `json:"PolynomialOrder"`
	NMax            int                `json:"NMax"`
	BC              string             `json:"BC"`
	ElementsPerCm   float64            `json:"ElementsPerCm"`
	EnergyGroup     int                `json:"EnergyGroup"`
	ParallelDegree  int                `json:"ParallelDegree"`
	PlotFile        string             `json:"PlotFile"`
	PlotPoints      int                `json:"PlotPoints"`
	Regions         []RegionParameters `json:"Regions"`
}

func (ip *InputParametersPN1D) Parse(data []byte) (err error) {
	if err = yaml.Unmarshal(data, ip); err != nil {
		return
	}
	ip.setDefaults()
	return
}

func (ip *InputParametersPN1D) setDefaults() {
	if ip.PolynomialOrder == 0 {
		ip.PolynomialOrder = 1
	}
	if ip.ParallelDegree == 0 {
		ip.ParallelDegree = 1
	}
	if ip.PlotPoints == 0 {
		ip.PlotPoints = 200
	}
	if len(ip.PlotFile) == 0 {
		ip.PlotFile = "scalar_flux.png"
	}
}

// BCType returns the parsed boundary condition, BCNone if the name is not supported
func (ip *InputParametersPN1D) BCType() utils.BCType {
	return utils.ParseBCName(ip.BC)
}

// Validate reports configuration errors before any assembly work is done
func (ip *InputParametersPN1D) Validate() (err error) {
	switch {
	case ip.NMax < 1 || ip.NMax%2 == 0:
		err = fmt.Errorf("NMax must be a positive odd integer, have %d", ip.NMax)
	case ip.BCType() == utils.BCNone:
		err = fmt.Errorf("unknown boundary condition: %q, supported: reflective, marshak", ip.BC)
	case ip.PolynomialOrder < 1:
		err = fmt.Errorf("PolynomialOrder must be at least 1, have %d", ip.PolynomialOrder)
	case ip.ElementsPerCm <= 0:
		err = fmt.Errorf("ElementsPerCm must be positive, have %v", ip.ElementsPerCm)
	case len(ip.Regions) == 0:
		err = fmt.Errorf("at least one region is required")
	}
	if err != nil {
		return
	}
	for i, r := range ip.Regions {
		if r.Length <= 0 {
			err = fmt.Errorf("region %d: length must be positive, have %v", i, r.Length)
			return
		}
	}
	return
}

func (ip *InputParametersPN1D) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("[%d]\t\t\t\t= Polynomial Order\n", ip.PolynomialOrder)
	fmt.Printf("[%d]\t\t\t\t= NMax\n", ip.NMax)
	fmt.Printf("[%s]\t\t\t= Boundary Condition\n", ip.BC)
	fmt.Printf("%8.5f\t\t= Elements per cm\n", ip.ElementsPerCm)
	fmt.Printf("[%d]\t\t\t\t= Energy Group\n", ip.EnergyGroup)
	fmt.Printf("[%d]\t\t\t\t= Parallel Degree\n", ip.ParallelDegree)
	for i, r := range ip.Regions {
		fmt.Printf("Regions[%d] = Length: %v, SigmaT: %v, SigmaS: %v, Source: %v\n",
			i, r.Length, r.SigmaT, r.SigmaS, r.Source)
	}
}
