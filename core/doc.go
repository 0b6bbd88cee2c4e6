// Package core implements the C7 Public API: the two entry points,
// Parse and Validate, that wrap the delimiter detector, lexer, grammar
// catalogue, tree builder, and field validator into the engine's public
// surface.
//
// An Engine owns a grammar catalogue, built once and treated as
// read-only thereafter (spec.md §9's "Process-wide state... the grammar
// cache is owned by the API-boundary object"). A single Engine may be
// shared across concurrently running Parse/Validate calls; each call
// owns its own token stream, tree, and diagnostic collector for its
// duration, so no call observes another's state (spec.md §3's
// "Lifecycle").
//
// # Basic Usage
//
// Build an Engine once (it loads and validates the built-in grammar
// catalogue) and reuse it across calls:
//
//	eng, err := core.New()
//	if err != nil {
//	    log.Fatal("loading grammar catalog:", err)
//	}
//
//	res, err := eng.Parse(content, ediseg.X12, "835")
//	if err != nil {
//	    log.Fatal("parse error:", err)
//	}
//
//	if !res.Success {
//	    for _, d := range res.Diagnostics {
//	        fmt.Printf("%s %s: %s\n", d.Severity(), d.Code(), d.Description())
//	    }
//	}
//
//	for _, clp := range res.Data.Root.FindAll("CLP") {
//	    claim, _ := segments.ParseCLP(clp)
//	    fmt.Println("claim", claim.PatientControlNumber, "paid", claim.ClaimPaymentAmount)
//	}
//
// # Engine Options
//
// Parse and Validate take functional options to tune field-validation
// strictness, structural recovery, and DoS-protection limits:
//
//	res, err := eng.Parse(content, ediseg.X12, "837",
//	    core.WithFieldValidationMode(core.ModeLenient),
//	    core.WithContinueOnError(true),
//	    core.WithMaxSegments(5000),
//	    core.WithMaxFieldLength(32768),
//	)
//
// An embedding application that wants a default option set loaded from a
// file rather than constructed in code can use the sibling core/profile
// package:
//
//	opts, err := profile.LoadOptions("ediparse.toml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res, err := eng.Parse(content, ediseg.X12, "835", opts...)
//
// # Parse vs. Validate
//
// Parse stops recovering once a structural error makes the rest of a
// transaction set unreliable, unless WithContinueOnError is set. Validate
// shares the same core but forces continue_on_error and lenient field
// validation internally, so every problem in the document surfaces in one
// pass:
//
//	vr, err := eng.Validate(content, ediseg.EDIFACT, "ORDERS")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(vr.Summary) // "2 error(s), 1 warning(s) across 1 transaction set"
//
// # Error Handling
//
// Parse/Validate return a non-nil Go error only when the call itself is
// meaningless to attempt - nil content, or an edi_type other than
// ediseg.X12/ediseg.EDIFACT. Every document-level problem (an empty
// document, an unrecognized envelope, a delimiter collision, a grammar
// that doesn't match the declared version, a missing mandatory segment)
// is reported as a diag.Record in the result instead, so a single call
// can surface many problems rather than stopping at the first:
//
//	res, err := eng.Parse(content, ediseg.X12, "835")
//	if err != nil {
//	    // caller misuse, not a document problem
//	    return err
//	}
//	if !res.Success {
//	    return fmt.Errorf("document invalid: %s", res.Diagnostics[0].Description())
//	}
//
// # Example: Complete Parsing Workflow
//
//	eng, err := core.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	content, err := testdata.LoadX12_835()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	res, err := eng.Parse(content, ediseg.X12, "835", core.WithDebug(true))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("run %s: %d transaction set(s), success=%v\n",
//	    res.RunID, res.MessageCount, res.Success)
//
//	for _, d := range res.Diagnostics {
//	    fmt.Printf("  %s %s at %s: %s\n", d.Severity(), d.Code(), d.Location(), d.Description())
//	}
//
//	for _, st := range res.Data.Root.ChildrenNamed("FUNCTIONAL_GROUP") {
//	    for _, txn := range st.ChildrenNamed("TRANSACTION_SET") {
//	        bpr, _ := segments.ParseBPR(txn.ChildrenNamed("BPR")[0])
//	        fmt.Printf("payment method %s, total %s\n", bpr.PaymentMethod, bpr.TotalPaymentAmount)
//	    }
//	}
package core
