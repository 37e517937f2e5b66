package checklist

// Defaults returns the built-in checklist definitions with every item
// pending. Load falls back to this set whenever the persisted state is
// missing or unreadable.
func Defaults() []Checklist {
	return []Checklist{
		{
			Title: "Infrastructure Checklist",
			Items: pending(
				"Resource group created per environment",
				"Bicep templates reviewed and linted",
				"Storage account deployed with hierarchical namespace",
				"Cognitive Search service provisioned",
				"Key Vault provisioned with purge protection",
				"Managed identities assigned to all services",
				"Private endpoints configured for data services",
				"Diagnostic settings routed to Log Analytics",
				"Budget alerts configured on the subscription",
				"Infrastructure pipeline runs green end to end",
			),
		},
		{
			Title: "Data Pipeline Checklist",
			Items: pending(
				"Source systems inventoried and access granted",
				"Extraction credentials stored in Key Vault",
				"Chunking strategy agreed with the search team",
				"Embedding model and dimensions locked",
				"Vector index schema deployed",
				"Incremental refresh function scheduled",
				"Dead-letter handling verified for failed documents",
				"Pipeline alerting wired to the on-call channel",
			),
		},
		{
			Title: "Security & Compliance Checklist",
			Items: pending(
				"Data classification completed for all sources",
				"PII redaction validated on sample documents",
				"Network access restricted to the virtual network",
				"Role assignments follow least privilege",
				"Secrets rotation schedule documented",
				"Audit logging retention meets policy",
			),
		},
		{
			Title: "Go-Live Checklist",
			Items: pending(
				"Runbook reviewed with the operations team",
				"Load test completed against the search tier",
				"Rollback procedure rehearsed",
				"Support handover session held",
				"Stakeholder sign-off recorded",
			),
		},
	}
}

func pending(names ...string) []Item {
	items := make([]Item, len(names))
	for i, name := range names {
		items[i] = Item{Name: name, Status: StatusPending}
	}
	return items
}
