// Package automationclient provides the primary entry point for constructing an
// Azure Automation management client that implements the automation.Client
// interface.
//
// It layers configuration, the retrying HTTP transport and Azure AD
// authentication on top of the operation descriptors and types defined in the
// automation package. Most applications import automationclient to build a
// client, then use the returned automation.Client to reach the resource
// clients, for example Runbooks(), Jobs(), DscNodes().
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/Azure/azure-sdk-for-go/sdk/azidentity"
//
//	  "github.com/fivetwenty-io/azure-automation/pkg/automation"
//	  "github.com/fivetwenty-io/azure-automation/pkg/automationclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  // Any azcore.TokenCredential works.
//	  cred, err := azidentity.NewDefaultAzureCredential(nil)
//	  if err != nil { log.Fatal(err) }
//
//	  cli, err := automationclient.New(&automation.Config{Credential: cred})
//	  if err != nil { log.Fatal(err) }
//
//	  // Single call.
//	  rb, err := cli.Runbooks().Get("sub", "rg", "account", "hello").Execute(ctx)
//	  if err != nil { log.Fatal(err) }
//	  log.Println(rb.Name)
//
//	  // Every page of a list operation.
//	  jobs, err := cli.Jobs().ListByAutomationAccount("sub", "rg", "account").
//	    Filter("properties/status eq 'Failed'").
//	    All(ctx)
//	  if err != nil { log.Fatal(err) }
//	  log.Println(len(jobs))
//	}
//
// Requests
//
// Every resource client method returns a builder. Required path parameters are
// passed to the method, optional query parameters ($filter, $skip, $top,
// $inlinecount) and the x-ms-client-request-id header are set on the builder.
// Nothing is sent until Send, Execute, Pages or All is called, and setting a
// parameter the operation does not accept fails with
// automation.ErrUnsupportedParameter.
//
// Errors
//
// Responses outside the 2xx range are returned as *automation.ResponseError
// with the raw body attached. Use automation.IsNotFound and friends, or
// errors.As, to inspect them.
package automationclient
