package community_test

import (
	"context"
	"fmt"

	"github.com/klamt-lab/commodel/builder"
	"github.com/klamt-lab/commodel/community"
	"github.com/klamt-lab/commodel/lp"
)

// ExampleBuildBalancedGrowth grows two toy organisms at μ = 0.5.
func ExampleBuildBalancedGrowth() {
	c, err := builder.ToyCommunity(10, "species1", "species2")
	if err != nil {
		fmt.Println(err)
		return
	}
	m, _, err := community.BuildBalancedGrowth(c, 0.5)
	if err != nil {
		fmt.Println(err)
		return
	}
	sol, err := m.Optimize(context.Background(), lp.NewSimplex(lp.DefaultOptions()))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%s %.2f\n", sol.Status, sol.ObjectiveValue)
	// Output:
	// optimal 0.50
}
