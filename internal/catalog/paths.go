// Package catalog defines the template catalog: stable artifact paths, the
// content-generator registry, and the component groupings the TUI browses.
// Each artifact has a forward-slash relative path that doubles as its registry
// key and its location inside the exported archive.

package catalog

import (
	"fmt"
	"strings"
)

// Path identifies one generated artifact. The string is both the registry
// lookup key and the relative file path inside the exported archive, so it is
// always forward-slash separated and never absolute.
type Path string

// Built-in artifact paths. The catalog is validated at construction, so every
// one of these must have a registered generator before the app starts.
const (
	// Project-level files, not tied to any component.
	PathRootReadme    Path = "README.md"
	PathRootGitignore Path = ".gitignore"

	// Documentation.
	PathDocsArchitecture   Path = "docs/architecture.md"
	PathDocsRunbook        Path = "docs/runbook.md"
	PathDocsDataDictionary Path = "docs/data-dictionary.md"

	// Azure DevOps pipelines.
	PathPipelineCI Path = "devops/azure-pipelines.yml"
	PathPipelinePR Path = "devops/pr-validation.yml"

	// Bicep infrastructure.
	PathBicepMain       Path = "infrastructure/bicep/main.bicep"
	PathBicepStorage    Path = "infrastructure/bicep/modules/storage.bicep"
	PathBicepSearch     Path = "infrastructure/bicep/modules/search.bicep"
	PathBicepKeyVault   Path = "infrastructure/bicep/modules/keyvault.bicep"
	PathBicepParameters Path = "infrastructure/bicep/parameters/dev.bicepparam"

	// Data ingestion skeletons.
	PathIngestionChunkProcessor Path = "src/data-ingestion/chunk_processor.py"
	PathIngestionVectorStore    Path = "src/data-ingestion/vector_store_manager.py"
	PathIngestionConfig         Path = "src/data-ingestion/ingestion_config.yaml"

	// Data extraction skeletons.
	PathExtractionExtractor Path = "src/data-extraction/data_extractor.py"
	PathExtractionCognitive Path = "src/data-extraction/azure_cognitive_processor.py"

	// Azure Functions refresh app.
	PathFunctionApp          Path = "src/azure-functions/data-refresh/function_app.py"
	PathFunctionHost         Path = "src/azure-functions/data-refresh/host.json"
	PathFunctionRequirements Path = "src/azure-functions/data-refresh/requirements.txt"
)

// Validate ensures the path is usable as both a registry key and an archive
// entry name.
func (p Path) Validate() error {
	s := string(p)
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("catalog: path is required")
	}
	if s != strings.TrimSpace(s) {
		return fmt.Errorf("catalog: path %q has surrounding whitespace", s)
	}
	if strings.Contains(s, "\\") {
		return fmt.Errorf("catalog: path %q must use forward slashes", s)
	}
	if strings.HasPrefix(s, "/") {
		return fmt.Errorf("catalog: path %q must be relative", s)
	}
	for _, segment := range strings.Split(s, "/") {
		switch segment {
		case "":
			return fmt.Errorf("catalog: path %q has an empty segment", s)
		case ".", "..":
			return fmt.Errorf("catalog: path %q may not contain %q", s, segment)
		}
	}
	return nil
}
