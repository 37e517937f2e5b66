package templates

const docsArchitectureSrc = `# Architecture Overview

## Purpose

This platform ingests heterogeneous documents, extracts and enriches their
content, and serves vector search over the result. The design favors managed
Azure services and a single ingestion path that every source flows through.

## Components

| Layer | Service | Responsibility |
|-------|---------|----------------|
| Landing | Storage account (ADLS Gen2) | Raw document drop zone |
| Extraction | Container app / batch job | Text extraction per format |
| Enrichment | Azure AI services | OCR, entities, key phrases |
| Chunking | Ingestion job | Token-aware chunk boundaries |
| Index | Azure AI Search | Vector + keyword retrieval |
| Refresh | Azure Functions | Scheduled incremental updates |
| Secrets | Key Vault | Connection strings and API keys |

## Data flow

1. Producers land files in the documents container.
2. The extraction job normalizes every format to plain text with metadata.
3. The enrichment step adds entities, key phrases, and layout hints.
4. The chunk processor splits text on semantic boundaries within a token
   budget and attaches provenance to every chunk.
5. Chunks are embedded and upserted into the search index.
6. The refresh function re-processes documents whose source changed.

## Environments

Dev, test, and prod are separate resource groups deployed from the same Bicep
stack with per-environment parameter files. Nothing is shared across
environments except the container registry.

## Non-functional notes

- All services use managed identity; no connection strings in app settings.
- Private endpoints front the storage account and the search service.
- Diagnostic settings stream to a shared Log Analytics workspace.
`

const docsRunbookSrc = `# Operations Runbook

## Daily checks

- Refresh function: confirm the last timer run succeeded (Application
  Insights, availability > 99%).
- Ingestion dead-letter container: should be empty; investigate anything
  older than 24 hours.
- Search index document count: compare against the source inventory.

## Common incidents

### Refresh function failing

1. Check Application Insights for the exception from the last invocation.
2. If the failure is a 403 from storage or search, the managed identity role
   assignment has drifted; re-run the infrastructure pipeline.
3. Re-trigger the function manually once the cause is fixed.

### Index out of date

1. Confirm the refresh function ran; if not, see above.
2. Inspect the processed container markers for the affected documents.
3. Re-queue the documents by clearing their markers; the next refresh pass
   picks them up.

### Extraction backlog growing

The extraction job scales on queue depth. If the backlog grows while
instances are maxed, raise the instance cap in the container app template and
redeploy.

## Escalation

On-call rotation owns this runbook. Escalate to the platform team when an
incident involves networking or identity changes.
`

const docsDataDictionarySrc = `# Data Dictionary

## Search index: documents-v1

| Field | Type | Notes |
|-------|------|-------|
| chunk_id | string, key | Stable hash of document id + chunk index |
| document_id | string, filterable | Source document identifier |
| source_path | string | Blob path of the original file |
| title | string, searchable | Document title when available |
| content | string, searchable | Chunk text |
| content_vector | vector(1536) | Embedding of content |
| language | string, filterable | ISO 639-1 code from detection |
| chunk_index | int | Position within the document |
| token_count | int | Tokens in the chunk |
| ingested_at | datetime | Time of the last upsert |

## Storage containers

| Container | Contents |
|-----------|----------|
| documents | Raw source files as landed by producers |
| processed | Per-document completion markers and extracted text |
| dead-letter | Documents that failed extraction or enrichment |

## Retention

Raw documents follow the source system's retention policy. Processed
artifacts and markers are rebuildable and keep 90 days.
`
