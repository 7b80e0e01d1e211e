// The vmsim tool runs demand-paging workloads against a simulated
// hierarchical virtual memory and reports what the pager did.
package main

func main() {
	Execute()
}
