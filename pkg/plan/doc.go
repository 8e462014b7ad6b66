// Package plan provides the serialisation format for computed cabling plans.
//
// A [Plan] is the canonical wire format of ledwire's output, used for plan
// files, API responses, cache entries and as the input of the renderers. It
// records the wall, the chain of links and, for every harness, the policy it
// was classified under together with its tier counts and the individual
// cables.
//
// # Architecture
//
// The package sits at the serialisation boundary between the planning core
// and everything downstream:
//
//   - pkg/core/grid, pkg/core/wiring, pkg/core/cable: pure computation
//   - [Plan], [Link], [Harness], [Cable]: serialisation types (this package)
//   - pkg/render/...: stateless drawing from a [Plan]
//
// Use [New] and [Plan.AddHarness] to assemble a plan from core results, or
// [Compute] to run the whole core in one call. [Plan.Core] converts a loaded
// plan back into core values.
//
// # Serialisation
//
// Plans are written as JSON or YAML. The format is chosen from the file
// extension by [ReadFile] and [WriteFile]:
//
//	p, _ := plan.Compute(10, 4, plan.DefaultPolicies())
//	plan.WriteFile(p, "wall.yaml")
//	loaded, _ := plan.ReadFile("wall.yaml")
//
// Links refer to panels by id; cables refer to links by their 1-based
// position in the chain, with 0 marking a trunk feed.
package plan
