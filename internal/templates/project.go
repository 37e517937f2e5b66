package templates

import (
	"fmt"
	"time"
)

// projectReadme stamps the generation date, so it is the one built-in
// generator whose output varies between exports.
func projectReadme() (string, error) {
	return fmt.Sprintf(readmeFormat, time.Now().Format("2006-01-02")), nil
}

const readmeFormat = `# Azure Data Platform Starter Kit

Generated by quarry on %s.

This kit contains the baseline artifacts for a retrieval-augmented data
platform on Azure: infrastructure templates, DevOps pipelines, ingestion and
extraction skeletons, and operational documentation.

## Layout

    docs/                 Architecture, runbook, and data dictionary
    devops/               Azure DevOps pipeline definitions
    infrastructure/bicep/ Bicep templates and parameters
    src/data-ingestion/   Chunking and vector store loading
    src/data-extraction/  Document extraction and enrichment
    src/azure-functions/  Scheduled data refresh function app

## Getting started

1. Review docs/architecture.md and adjust the resource naming to your
   organization's conventions.
2. Deploy the dev environment:

    az deployment sub create \
      --location westeurope \
      --template-file infrastructure/bicep/main.bicep \
      --parameters infrastructure/bicep/parameters/dev.bicepparam

3. Import devops/azure-pipelines.yml into Azure DevOps and point it at this
   repository.
4. Work through the checklists before promoting anything to production.
`

const gitignoreSrc = `# Python
__pycache__/
*.py[cod]
.venv/
.pytest_cache/

# Azure Functions
local.settings.json
.python_packages/

# Editors
.vscode/
.idea/

# Local state
.quarry/
*.zip
`
