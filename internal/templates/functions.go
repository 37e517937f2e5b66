package templates

const functionAppSrc = `"""Timer-triggered data refresh for the search index.

Re-processes documents whose source blob changed since the last run. The
heavy lifting lives in the ingestion and extraction packages; this app only
schedules and sequences the work.
"""

import json
import logging
import os
from datetime import datetime, timedelta, timezone

import azure.functions as func
from azure.identity import DefaultAzureCredential
from azure.storage.blob import BlobServiceClient

app = func.FunctionApp()

CONFIG = {
    "storage_account": os.getenv("STORAGE_ACCOUNT_NAME", ""),
    "documents_container": os.getenv("DOCUMENTS_CONTAINER", "documents"),
    "processed_container": os.getenv("PROCESSED_CONTAINER", "processed"),
    "refresh_window_hours": int(os.getenv("REFRESH_WINDOW_HOURS", "6")),
}


def _blob_service() -> BlobServiceClient:
    url = f"https://{CONFIG['storage_account']}.blob.core.windows.net"
    return BlobServiceClient(url, credential=DefaultAzureCredential())


@app.timer_trigger(schedule="0 0 */6 * * *", arg_name="timer")
def refresh_index(timer: func.TimerRequest) -> None:
    """Find changed documents and queue them for re-ingestion."""
    if timer.past_due:
        logging.warning("refresh timer is past due")

    cutoff = datetime.now(timezone.utc) - timedelta(hours=CONFIG["refresh_window_hours"])
    service = _blob_service()
    documents = service.get_container_client(CONFIG["documents_container"])
    processed = service.get_container_client(CONFIG["processed_container"])

    queued = 0
    for blob in documents.list_blobs():
        if blob.last_modified < cutoff:
            continue
        marker = processed.get_blob_client(f"{blob.name}.marker")
        if marker.exists():
            marker.delete_blob()
        queued += 1

    logging.info("refresh pass complete: %d documents queued", queued)


@app.route(route="refresh-status", auth_level=func.AuthLevel.FUNCTION)
def refresh_status(req: func.HttpRequest) -> func.HttpResponse:
    """Report how many documents still await re-processing."""
    service = _blob_service()
    documents = service.get_container_client(CONFIG["documents_container"])
    processed = service.get_container_client(CONFIG["processed_container"])

    total = sum(1 for _ in documents.list_blobs())
    done = sum(1 for _ in processed.list_blobs(name_starts_with=""))

    body = {"documents": total, "processed_markers": done}
    return func.HttpResponse(json.dumps(body), mimetype="application/json")
`

const functionHostSrc = `{
  "version": "2.0",
  "logging": {
    "applicationInsights": {
      "samplingSettings": {
        "isEnabled": true,
        "excludedTypes": "Request"
      }
    }
  },
  "extensionBundle": {
    "id": "Microsoft.Azure.Functions.ExtensionBundle",
    "version": "[4.*, 5.0.0)"
  },
  "functionTimeout": "00:10:00"
}
`

const functionRequirementsSrc = `azure-functions>=1.18
azure-identity>=1.15
azure-storage-blob>=12.19
azure-search-documents>=11.4
azure-ai-textanalytics>=5.3
openai>=1.12
`
