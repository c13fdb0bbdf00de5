// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Implements: prd001-analysis-core R5 (policy);
//
//	docs/ARCHITECTURE § Policy.
package types

// Policy fine-tunes what counts as a use. Marking more things used
// reduces false positives for "unused include"; marking fewer improves
// "missing include" detection in the same way.
//
// Policy is an immutable value threaded into the analysis at
// construction; it is never a process-global.
type Policy struct {
	// Construction counts object construction as a use of the
	// constructed type even when the type name is not spelled out.
	Construction bool
	// Members counts member-access expressions as references to the
	// accessed member, not just its owning type.
	Members bool
	// Operators counts operator invocations as references to the
	// operator function.
	Operators bool
}
