package templates

const bicepMainSrc = `// Subscription-scoped entry point for the data platform stack.
targetScope = 'subscription'

@description('Deployment environment short name.')
@allowed(['dev', 'test', 'prod'])
param environment string

@description('Azure region for all resources.')
param location string = 'westeurope'

@description('Workload name used in resource naming.')
param workload string = 'dataplatform'

var resourceGroupName = 'rg-${workload}-${environment}'

resource rg 'Microsoft.Resources/resourceGroups@2023-07-01' = {
  name: resourceGroupName
  location: location
  tags: {
    workload: workload
    environment: environment
  }
}

module storage 'modules/storage.bicep' = {
  name: 'storage'
  scope: rg
  params: {
    environment: environment
    location: location
    workload: workload
  }
}

module search 'modules/search.bicep' = {
  name: 'search'
  scope: rg
  params: {
    environment: environment
    location: location
    workload: workload
  }
}

module keyvault 'modules/keyvault.bicep' = {
  name: 'keyvault'
  scope: rg
  params: {
    environment: environment
    location: location
    workload: workload
  }
}

output resourceGroupName string = rg.name
output storageAccountName string = storage.outputs.storageAccountName
output searchServiceName string = search.outputs.searchServiceName
output keyVaultName string = keyvault.outputs.keyVaultName
`

const bicepStorageSrc = `// Data lake storage account with the platform's fixed container layout.
param environment string
param location string
param workload string

var storageAccountName = toLower('st${workload}${environment}')

resource storageAccount 'Microsoft.Storage/storageAccounts@2023-01-01' = {
  name: storageAccountName
  location: location
  sku: {
    name: environment == 'prod' ? 'Standard_ZRS' : 'Standard_LRS'
  }
  kind: 'StorageV2'
  properties: {
    isHnsEnabled: true
    minimumTlsVersion: 'TLS1_2'
    allowBlobPublicAccess: false
    networkAcls: {
      defaultAction: 'Deny'
      bypass: 'AzureServices'
    }
  }
}

resource blobService 'Microsoft.Storage/storageAccounts/blobServices@2023-01-01' = {
  parent: storageAccount
  name: 'default'
  properties: {
    deleteRetentionPolicy: {
      enabled: true
      days: 14
    }
  }
}

resource containers 'Microsoft.Storage/storageAccounts/blobServices/containers@2023-01-01' = [
  for name in ['documents', 'processed', 'dead-letter']: {
    parent: blobService
    name: name
  }
]

output storageAccountName string = storageAccount.name
`

const bicepSearchSrc = `// Azure AI Search service sized per environment.
param environment string
param location string
param workload string

var searchServiceName = toLower('srch-${workload}-${environment}')

resource searchService 'Microsoft.Search/searchServices@2023-11-01' = {
  name: searchServiceName
  location: location
  sku: {
    name: environment == 'prod' ? 'standard' : 'basic'
  }
  identity: {
    type: 'SystemAssigned'
  }
  properties: {
    replicaCount: environment == 'prod' ? 2 : 1
    partitionCount: 1
    publicNetworkAccess: 'disabled'
    semanticSearch: 'standard'
  }
}

output searchServiceName string = searchService.name
output searchPrincipalId string = searchService.identity.principalId
`

const bicepKeyVaultSrc = `// Key Vault holding pipeline secrets and service API keys.
param environment string
param location string
param workload string

var keyVaultName = toLower('kv-${workload}-${environment}')

resource keyVault 'Microsoft.KeyVault/vaults@2023-07-01' = {
  name: keyVaultName
  location: location
  properties: {
    tenantId: subscription().tenantId
    sku: {
      family: 'A'
      name: 'standard'
    }
    enableRbacAuthorization: true
    enablePurgeProtection: true
    softDeleteRetentionInDays: 90
    networkAcls: {
      defaultAction: 'Deny'
      bypass: 'AzureServices'
    }
  }
}

output keyVaultName string = keyVault.name
`

const bicepParametersSrc = `using '../main.bicep'

param environment = 'dev'
param location = 'westeurope'
param workload = 'dataplatform'
`
